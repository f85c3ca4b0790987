package flightRepo

import (
	"context"
	"errors"

	"voyago/models"
)

// ErrFlightNotFound is returned when a lookup by id matches nothing.
var ErrFlightNotFound = errors.New("flight not found")

// SeatAvailability is the seat-count summary for one flight.
type SeatAvailability struct {
	FlightNumber   string `json:"flightNumber"`
	Airline        string `json:"airline"`
	DepartureDate  string `json:"departureDate"`
	DepartureTime  string `json:"departureTime"`
	CabinClass     string `json:"cabinClass"`
	TotalSeats     int    `json:"totalSeats"`
	AvailableSeats int    `json:"availableSeats"`
}

// FlightRepository is the read-only query contract over the flight catalog.
// Search never decrements seats; no reservation side effect happens here.
type FlightRepository interface {
	// Search returns flights on the route and date with seats remaining,
	// ordered by cabin class then ascending price. City match is
	// case-insensitive. An empty slice means no matches, not an error.
	Search(ctx context.Context, origin, destination, date string) ([]models.Flight, error)
	// GetByID returns the full record or ErrFlightNotFound.
	GetByID(ctx context.Context, id int) (*models.Flight, error)
	// CheckAvailability returns the seat counts or ErrFlightNotFound.
	CheckAvailability(ctx context.Context, id int) (*SeatAvailability, error)
}
