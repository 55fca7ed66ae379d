package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission represents one inbound contact-form message.
// ID is generated by the store on insert; CreatedAt is stamped by the
// intake service, never supplied by the caller.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
