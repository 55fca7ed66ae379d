package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/dto"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/service"
)

const businessNotFoundMessage = "Business not found"

// BusinessHandler exposes the business catalog endpoints.
type BusinessHandler struct {
	service *service.BusinessService
	log     *zap.Logger
}

// NewBusinessHandler creates a new handler instance.
func NewBusinessHandler(service *service.BusinessService, log *zap.Logger) *BusinessHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BusinessHandler{service: service, log: log}
}

// List handles GET /api/businesses. The response is a bare JSON array, the
// shape the existing frontend consumes.
func (h *BusinessHandler) List(c echo.Context) error {
	filter := dto.SearchFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Location: strings.TrimSpace(c.QueryParam("location")),
		Query:    strings.TrimSpace(c.QueryParam("search")),
		Sort:     strings.TrimSpace(c.QueryParam("sort")),
	}

	if ratingStr := strings.TrimSpace(c.QueryParam("rating")); ratingStr != "" {
		minRating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid rating value")
		}
		filter.MinRating = &minRating
	}

	businesses, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		h.log.Error("business search failed", zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to list businesses")
	}
	if businesses == nil {
		businesses = []entity.Business{}
	}

	return c.JSON(http.StatusOK, businesses)
}

// Detail handles GET /business/:id. A missing or non-numeric id yields the
// original's plain 404 body.
func (h *BusinessHandler) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, businessNotFoundMessage)
	}

	result, err := h.service.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			return c.String(http.StatusNotFound, businessNotFoundMessage)
		}
		h.log.Error("business detail failed", zap.Int("id", id), zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to resolve business")
	}

	return c.JSON(http.StatusOK, result)
}

// Categories handles GET /api/categories.
func (h *BusinessHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		h.log.Error("category listing failed", zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to list categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// Locations handles GET /api/locations.
func (h *BusinessHandler) Locations(c echo.Context) error {
	locations, err := h.service.Locations(c.Request().Context())
	if err != nil {
		h.log.Error("location listing failed", zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to list locations")
	}
	return c.JSON(http.StatusOK, locations)
}
