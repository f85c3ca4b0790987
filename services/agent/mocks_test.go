package agent

import (
	"context"
	"errors"
	"time"

	flightRepo "voyago/database/repository/flight"
	"voyago/models"

	"github.com/stretchr/testify/mock"
)

// stubCompletion replays scripted responses in order; an empty script always
// errors. Lets one test drive both the extraction call and the phrasing call.
type stubCompletion struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		return "", errors.New("completion unavailable")
	}
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return s.responses[i], err
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Search(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
	args := m.Called(ctx, origin, destination, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockFlightRepository) CheckAvailability(ctx context.Context, id int) (*flightRepo.SeatAvailability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flightRepo.SeatAvailability), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) List(ctx context.Context) ([]models.SessionSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SessionSummary), args.Error(1)
}

func (m *MockSessionRepository) CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}

// londonFlights mirrors the seeded Delhi→London 2026-02-22 result set,
// ordered by cabin class then price as the catalog returns it.
func londonFlights() []models.Flight {
	return []models.Flight{
		{ID: 7, FlightNumber: "BA309", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-22", DepartureTime: "16:00", ArrivalTime: "22:30", Duration: "9h 30m", CabinClass: "Business", Price: 1650, Currency: "GBP", TotalSeats: 40, AvailableSeats: 18},
		{ID: 5, FlightNumber: "AI103", Airline: "Air India", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-22", DepartureTime: "10:00", ArrivalTime: "16:30", Duration: "9h 30m", CabinClass: "Economy", Price: 580, Currency: "GBP", TotalSeats: 180, AvailableSeats: 112},
		{ID: 6, FlightNumber: "BA309", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-22", DepartureTime: "16:00", ArrivalTime: "22:30", Duration: "9h 30m", CabinClass: "Economy", Price: 695, Currency: "GBP", TotalSeats: 200, AvailableSeats: 88},
	}
}
