package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/service"
)

// ContactResponse is the legacy contact-form reply. Success or failure is
// encoded in the body; the HTTP status is always 200 so the existing
// frontend keeps working.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactHandler accepts contact-form submissions.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /submit-contact with form-encoded fields.
func (h *ContactHandler) Submit(c echo.Context) error {
	input := service.ContactInput{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	}

	outcome := h.service.Submit(c.Request().Context(), input)

	return c.JSON(http.StatusOK, ContactResponse{
		Success: outcome.OK(),
		Message: outcome.Message,
	})
}
