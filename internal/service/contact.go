package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/idna"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/repository"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-']+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultSubject = "No Subject"

// User-visible intake messages. The frontend displays them verbatim, so
// the wording is part of the contract.
const (
	msgMissingFields    = "Please fill all required fields"
	msgInvalidEmail     = "Please enter a valid email address"
	msgStoreUnavailable = "Database connection error. Please try again later."
	msgNotPersisted     = "Failed to save your message. Please try again."
	msgAccepted         = "Thank you for your message! We will get back to you soon."
)

// SubmitStatus labels the outcome of one contact submission attempt.
type SubmitStatus string

const (
	SubmitAccepted         SubmitStatus = "accepted"
	SubmitInvalid          SubmitStatus = "invalid"
	SubmitStoreUnavailable SubmitStatus = "store_unavailable"
	SubmitNotPersisted     SubmitStatus = "not_persisted"
	SubmitFailed           SubmitStatus = "failed"
)

// SubmitOutcome is the structured result of a submission attempt. Submit
// always returns one; no fault crosses the component boundary.
type SubmitOutcome struct {
	Status  SubmitStatus
	Message string
	ID      uuid.UUID
}

// OK reports whether the submission was durably accepted.
func (o SubmitOutcome) OK() bool {
	return o.Status == SubmitAccepted
}

// ContactInput carries the caller-supplied form fields.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService validates and persists contact submissions.
type ContactService struct {
	repo repository.ContactsRepository
	log  *zap.Logger
	now  func() time.Time
}

// ContactServiceOption configures optional dependencies.
type ContactServiceOption func(*ContactService)

// WithContactClock overrides the timestamp source for created_at.
func WithContactClock(now func() time.Time) ContactServiceOption {
	return func(s *ContactService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewContactService creates the intake service.
func NewContactService(repo repository.ContactsRepository, log *zap.Logger, opts ...ContactServiceOption) *ContactService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ContactService{repo: repo, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the input, stamps created_at and makes a single
// best-effort insert into the contact store. Every failure mode maps to a
// distinct outcome; a recover guard keeps unexpected faults in-band.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (outcome SubmitOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("contact submission panicked", zap.Any("panic", r))
			outcome = failedOutcome(fmt.Errorf("%v", r))
		}
	}()

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" || message == "" {
		return SubmitOutcome{Status: SubmitInvalid, Message: msgMissingFields}
	}
	if !validEmail(email) {
		return SubmitOutcome{Status: SubmitInvalid, Message: msgInvalidEmail}
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	submission := &entity.ContactSubmission{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: s.now(),
	}

	id, err := s.repo.Insert(ctx, submission)
	switch {
	case errors.Is(err, repository.ErrStoreUnavailable):
		s.log.Warn("contact store unavailable", zap.Error(err))
		return SubmitOutcome{Status: SubmitStoreUnavailable, Message: msgStoreUnavailable}
	case err != nil:
		s.log.Error("contact submission failed", zap.Error(err))
		return failedOutcome(err)
	case id == uuid.Nil:
		s.log.Error("contact insert returned no identifier")
		return SubmitOutcome{Status: SubmitNotPersisted, Message: msgNotPersisted}
	}

	s.log.Info("contact form submitted", zap.String("contact_id", id.String()))
	return SubmitOutcome{Status: SubmitAccepted, Message: msgAccepted, ID: id}
}

func failedOutcome(err error) SubmitOutcome {
	return SubmitOutcome{
		Status:  SubmitFailed,
		Message: fmt.Sprintf("An error occurred: %v. Please try again later.", err),
	}
}

func validEmail(email string) bool {
	email = strings.ToLower(email)
	if !emailPattern.MatchString(email) {
		return false
	}
	parts := strings.SplitN(email, "@", 2)
	ascii, err := idnaProfile.ToASCII(parts[1])
	return err == nil && ascii != ""
}
