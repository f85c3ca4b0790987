package handlers

import (
	"errors"
	"net/http"
	"strconv"

	flightRepo "voyago/database/repository/flight"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FlightHandler exposes read-only catalog lookups. The booking flow itself
// goes through the chat endpoint; these exist for direct detail checks.
type FlightHandler struct {
	flights flightRepo.FlightRepository
}

func NewFlightHandler(flights flightRepo.FlightRepository) *FlightHandler {
	return &FlightHandler{flights: flights}
}

// GetFlight returns the full catalog record for one flight id.
func (h *FlightHandler) GetFlight(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid flight id", "")
		return
	}

	flight, err := h.flights.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, flightRepo.ErrFlightNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Flight not found", "")
			return
		}
		utils.GetLogger().Error("flights: lookup failed", zap.Int("flight_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load flight", "")
		return
	}
	c.JSON(http.StatusOK, flight)
}

// GetAvailability returns the seat counts for one flight id.
func (h *FlightHandler) GetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid flight id", "")
		return
	}

	availability, err := h.flights.CheckAvailability(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, flightRepo.ErrFlightNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Flight not found", "")
			return
		}
		utils.GetLogger().Error("flights: availability check failed", zap.Int("flight_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check availability", "")
		return
	}
	c.JSON(http.StatusOK, availability)
}
