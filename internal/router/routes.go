package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/config"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/handler"
	middlewarepkg "github.com/VPPranav/Bangalore-Local-Business-Finder/internal/middleware"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/observability"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Pages      *handler.PagesHandler
	Businesses *handler.BusinessHandler
	Contact    *handler.ContactHandler
}

// Register wires all HTTP routes for the service.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers, metrics *observability.HTTPMetrics) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	e.GET("/", handlers.Pages.Index)
	e.GET("/search", handlers.Pages.Search)

	e.GET("/api/businesses", handlers.Businesses.List)
	e.GET("/api/categories", handlers.Businesses.Categories)
	e.GET("/api/locations", handlers.Businesses.Locations)
	e.GET("/business/:id", handlers.Businesses.Detail)

	e.POST("/submit-contact", handlers.Contact.Submit, middlewarepkg.ContactRateLimiter(cfg.RateLimitContact))
}
