package agent

import (
	"context"
	"strings"
	"testing"

	"voyago/models"
	ai "voyago/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAgent(flights *MockFlightRepository, completion *stubCompletion) *BookingAgent {
	return NewBookingAgent(flights, ai.NewIntentExtractor(completion), completion, "Delhi")
}

func TestBookingAgent_AsksForDestinationFirst(t *testing.T) {
	flights := &MockFlightRepository{}
	// Extraction yields nothing usable; the agent must fail open and ask
	// for the first missing field (destination), never the date.
	completion := &stubCompletion{responses: []string{"no json here"}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")
	session.AddMessage(models.RoleUser, "I want to book a flight", "")

	response, err := a.HandleTurn(context.Background(), session, "I want to book a flight")
	require.NoError(t, err)
	assert.Contains(t, response, "Where would you like to fly to?")
	assert.Contains(t, response, "from Delhi")
	assert.Equal(t, models.StageCollectingInfo, session.Booking.Stage)
	flights.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingAgent_AsksForDateWithDefaultsStated(t *testing.T) {
	flights := &MockFlightRepository{}
	completion := &stubCompletion{responses: []string{`{"destination": "London"}`}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")
	session.AddMessage(models.RoleUser, "I want to fly to London", "")

	response, err := a.HandleTurn(context.Background(), session, "I want to fly to London")
	require.NoError(t, err)
	assert.Contains(t, response, "Which date")
	assert.Contains(t, response, "how many passengers")
	assert.Contains(t, response, "defaults: 1 passenger, Economy")
	assert.Equal(t, "London", session.Booking.Destination)
	assert.Equal(t, "Delhi", session.Booking.Origin)
	assert.Equal(t, models.StageCollectingInfo, session.Booking.Stage)
}

func TestBookingAgent_SearchesOnceFieldsComplete(t *testing.T) {
	flights := &MockFlightRepository{}
	flights.On("Search", mock.Anything, "Delhi", "London", "2026-02-22").
		Return(londonFlights(), nil)

	// First response extracts the date; the phrasing call fails so the
	// deterministic rendering is used.
	completion := &stubCompletion{responses: []string{`{"departure_date": "2026-02-22"}`}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")
	session.Booking.Destination = "London"
	session.AddMessage(models.RoleUser, "22 Feb", "")

	response, err := a.HandleTurn(context.Background(), session, "22 Feb")
	require.NoError(t, err)
	assert.Equal(t, models.StageShowingOptions, session.Booking.Stage)
	require.Len(t, session.LastResults, 3)
	assert.Contains(t, response, "AI103")
	assert.Contains(t, response, "Reply with the flight number")
	flights.AssertExpectations(t)
}

func TestBookingAgent_PositionSelectionConfirms(t *testing.T) {
	flights := &MockFlightRepository{}
	completion := &stubCompletion{responses: []string{`{}`}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")
	session.Booking.Destination = "London"
	session.Booking.DepartureDate = "2026-02-22"
	session.Booking.Stage = models.StageShowingOptions
	session.LastResults = londonFlights()
	session.AddMessage(models.RoleUser, "2", "")

	response, err := a.HandleTurn(context.Background(), session, "2")
	require.NoError(t, err)

	b := session.Booking
	assert.Equal(t, models.StageConfirmed, b.Stage)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, 5, b.SelectedFlightID)
	assert.Equal(t, "AI103", b.FlightNumber)
	assert.Equal(t, "Air India", b.Airline)
	assert.Equal(t, 580.0, b.Price)
	assert.Equal(t, "GBP", b.Currency)
	assert.True(t, strings.HasPrefix(b.BookingID, "BK"))
	assert.Contains(t, response, b.BookingID)
	assert.Contains(t, response, "Delhi -> London")
}

func TestBookingAgent_UnresolvableSelectionReprompts(t *testing.T) {
	flights := &MockFlightRepository{}
	completion := &stubCompletion{responses: []string{`{}`}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")
	session.Booking.Destination = "London"
	session.Booking.DepartureDate = "2026-02-22"
	session.Booking.Stage = models.StageShowingOptions
	session.LastResults = londonFlights()

	response, err := a.HandleTurn(context.Background(), session, "99")
	require.NoError(t, err)
	assert.Contains(t, response, "couldn't find that flight")
	assert.Equal(t, models.StageShowingOptions, session.Booking.Stage)
	assert.Empty(t, session.Booking.BookingID)
}

func TestBookingAgent_RepeatedDestinationIsIdempotent(t *testing.T) {
	flights := &MockFlightRepository{}
	flights.On("Search", mock.Anything, "Delhi", "London", "2026-02-22").
		Return(londonFlights(), nil)

	completion := &stubCompletion{responses: []string{`{"destination": "London"}`}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")
	session.Booking.Destination = "London"
	session.Booking.DepartureDate = "2026-02-22"
	session.Booking.Travelers = 2
	session.Booking.Stage = models.StageShowingOptions
	session.LastResults = londonFlights()

	_, err := a.HandleTurn(context.Background(), session, "to London")
	require.NoError(t, err)
	assert.Equal(t, models.StageShowingOptions, session.Booking.Stage)
	assert.Equal(t, "London", session.Booking.Destination)
	assert.Equal(t, "2026-02-22", session.Booking.DepartureDate)
	assert.Equal(t, 2, session.Booking.Travelers)
}

func TestBookingAgent_NoFlightsExplainsDomain(t *testing.T) {
	flights := &MockFlightRepository{}
	flights.On("Search", mock.Anything, "Delhi", "Tokyo", "2026-02-22").
		Return([]models.Flight{}, nil)

	completion := &stubCompletion{responses: []string{`{"destination": "Tokyo", "departure_date": "2026-02-22"}`}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")

	response, err := a.HandleTurn(context.Background(), session, "Tokyo on 22 Feb")
	require.NoError(t, err)
	assert.Contains(t, response, "No flights found from Delhi to Tokyo")
	assert.Contains(t, response, "Delhi→London")
	assert.Equal(t, models.StageCollectingInfo, session.Booking.Stage)
	assert.Empty(t, session.LastResults)
}

func TestBookingAgent_ConfirmedBookingStartsFreshRecord(t *testing.T) {
	flights := &MockFlightRepository{}
	completion := &stubCompletion{responses: []string{`{"destination": "Paris"}`}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")
	session.Booking.Stage = models.StageConfirmed
	session.Booking.Status = models.BookingConfirmed
	session.Booking.BookingID = "BK20260220101010"
	session.Booking.FlightNumber = "AI103"
	session.LastResults = londonFlights()

	response, err := a.HandleTurn(context.Background(), session, "now book me Paris")
	require.NoError(t, err)
	assert.Contains(t, response, "Which date")
	assert.Equal(t, models.StageCollectingInfo, session.Booking.Stage)
	assert.Equal(t, "Paris", session.Booking.Destination)
	// The confirmed record was not mutated in place; a fresh one started.
	assert.Empty(t, session.Booking.BookingID)
	assert.Empty(t, session.Booking.FlightNumber)
	assert.Empty(t, session.LastResults)
}

// Three turns end to end: destination, then date, then a positional pick.
func TestBookingAgent_EndToEndLondonScenario(t *testing.T) {
	flights := &MockFlightRepository{}
	flights.On("Search", mock.Anything, "Delhi", "London", "2026-02-22").
		Return(londonFlights(), nil)

	completion := &stubCompletion{responses: []string{
		`{"destination": "London"}`, // turn 1 extraction
		`{"departure_date": "2026-02-22"}`, // turn 2 extraction
		"", // turn 2 phrasing fails -> deterministic list
		`{}`, // turn 3 extraction
	}}
	a := newTestAgent(flights, completion)

	session := models.NewSession("s1")

	resp1, err := a.HandleTurn(context.Background(), session, "I want to fly to London")
	require.NoError(t, err)
	assert.Contains(t, resp1, "Which date")

	resp2, err := a.HandleTurn(context.Background(), session, "22 Feb")
	require.NoError(t, err)
	assert.Equal(t, models.StageShowingOptions, session.Booking.Stage)
	assert.Contains(t, resp2, "1. BA309")

	resp3, err := a.HandleTurn(context.Background(), session, "2")
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirmed, session.Booking.Stage)
	assert.Equal(t, "AI103", session.Booking.FlightNumber)
	assert.Contains(t, resp3, "confirmed")
}
