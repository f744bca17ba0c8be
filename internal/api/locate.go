package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/UnknownOlympus/locus/internal/service"
	"github.com/UnknownOlympus/locus/internal/trilateration"
	"github.com/gin-gonic/gin"
)

// Distance units accepted in a locate request.
const (
	unitKilometers = "km"
	unitMiles      = "mi"
)

var errPartialCoordinates = errors.New("latitude and longitude must be given together")

type locateRequest struct {
	Unit   string         `json:"unit"   binding:"omitempty,oneof=km mi"`
	Points []pointRequest `json:"points" binding:"required,dive"`
}

type pointRequest struct {
	AnchorID  string   `json:"anchor_id,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Distance  *float64 `json:"distance"            binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Locate handles POST /v1/locate.
func (h *Handler) Locate(c *gin.Context) {
	var req locateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	measurements, err := req.measurements()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	inMiles := h.defaultMiles
	switch req.Unit {
	case unitMiles:
		inMiles = true
	case unitKilometers:
		inMiles = false
	}

	coords, err := h.locator.Locate(c.Request.Context(), measurements, inMiles)
	if err != nil {
		c.JSON(statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, coords)
}

func (r locateRequest) measurements() ([]models.Measurement, error) {
	out := make([]models.Measurement, len(r.Points))
	for idx, p := range r.Points {
		if (p.Latitude == nil) != (p.Longitude == nil) {
			return nil, fmt.Errorf("point %d: %w", idx+1, errPartialCoordinates)
		}

		out[idx] = models.Measurement{AnchorID: p.AnchorID, Distance: *p.Distance}
		if p.Latitude != nil {
			out[idx].Coordinates = &models.Coordinates{Latitude: *p.Latitude, Longitude: *p.Longitude}
		}
	}

	return out, nil
}

func statusFor(err error) int {
	switch {
	case service.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAnchorNotFound):
		return http.StatusNotFound
	case errors.Is(err, trilateration.ErrDegenerateGeometry),
		errors.Is(err, trilateration.ErrNoIntersection),
		errors.Is(err, service.ErrAnchorUnresolved):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
