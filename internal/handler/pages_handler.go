package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/dto"
)

// PagesHandler serves the landing-page state and the search redirect.
// Markup rendering lives entirely in the static frontend; the landing
// route only echoes the initial filter state it was called with.
type PagesHandler struct{}

// NewPagesHandler creates a new handler instance.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Index handles GET /.
func (h *PagesHandler) Index(c echo.Context) error {
	state := dto.PageState{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
	}
	return c.JSON(http.StatusOK, state)
}

// Search handles GET /search and redirects to the landing page with the
// query mapped into the search filter.
func (h *PagesHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	target := "/"
	if q != "" {
		target = "/?search=" + url.QueryEscape(q)
	}
	return c.Redirect(http.StatusFound, target)
}
