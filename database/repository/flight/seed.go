package flightRepo

import (
	"fmt"
	"strings"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ValidRoutes and ValidDates describe the demo catalog's coverage; they are
// quoted back to the customer when a search comes up empty.
var (
	ValidRoutes = []string{"Delhi→London", "Delhi→Paris"}
	ValidDates  = []string{"2026-02-21", "2026-02-22", "2026-02-23"}
)

// NoFlightsMessage explains an empty search result, naming the routes and
// dates the catalog actually covers.
func NoFlightsMessage(origin, destination, date string) string {
	return fmt.Sprintf(
		"No flights found from %s to %s on %s. Available routes: %s. Available dates: %s.",
		origin, destination, date,
		strings.Join(ValidRoutes, ", "),
		strings.Join(ValidDates, ", "),
	)
}

// seedFlights is the fixed demo dataset: Delhi→London and Delhi→Paris,
// 21–23 Feb 2026, one document per cabin-class fare.
var seedFlights = []models.Flight{
	// Delhi → London, 21 Feb
	{ID: 1, FlightNumber: "AI101", Airline: "Air India", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-21", DepartureTime: "08:00", ArrivalTime: "14:30", Duration: "9h 30m", CabinClass: "Economy", Price: 650.00, Currency: "GBP", TotalSeats: 180, AvailableSeats: 45},
	{ID: 2, FlightNumber: "AI101", Airline: "Air India", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-21", DepartureTime: "08:00", ArrivalTime: "14:30", Duration: "9h 30m", CabinClass: "Business", Price: 1200.00, Currency: "GBP", TotalSeats: 60, AvailableSeats: 12},
	{ID: 3, FlightNumber: "BA307", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-21", DepartureTime: "14:00", ArrivalTime: "20:30", Duration: "9h 30m", CabinClass: "Economy", Price: 780.00, Currency: "GBP", TotalSeats: 200, AvailableSeats: 67},
	{ID: 4, FlightNumber: "BA307", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-21", DepartureTime: "14:00", ArrivalTime: "20:30", Duration: "9h 30m", CabinClass: "Business", Price: 1800.00, Currency: "GBP", TotalSeats: 40, AvailableSeats: 5},
	// Delhi → London, 22 Feb
	{ID: 5, FlightNumber: "AI103", Airline: "Air India", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-22", DepartureTime: "10:00", ArrivalTime: "16:30", Duration: "9h 30m", CabinClass: "Economy", Price: 580.00, Currency: "GBP", TotalSeats: 180, AvailableSeats: 112},
	{ID: 6, FlightNumber: "BA309", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-22", DepartureTime: "16:00", ArrivalTime: "22:30", Duration: "9h 30m", CabinClass: "Economy", Price: 695.00, Currency: "GBP", TotalSeats: 200, AvailableSeats: 88},
	{ID: 7, FlightNumber: "BA309", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-22", DepartureTime: "16:00", ArrivalTime: "22:30", Duration: "9h 30m", CabinClass: "Business", Price: 1650.00, Currency: "GBP", TotalSeats: 40, AvailableSeats: 18},
	// Delhi → London, 23 Feb
	{ID: 8, FlightNumber: "AI105", Airline: "Air India", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-23", DepartureTime: "21:00", ArrivalTime: "03:30", Duration: "9h 30m", CabinClass: "Economy", Price: 720.00, Currency: "GBP", TotalSeats: 180, AvailableSeats: 8},
	{ID: 9, FlightNumber: "BA311", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-23", DepartureTime: "09:00", ArrivalTime: "15:30", Duration: "9h 30m", CabinClass: "Economy", Price: 850.00, Currency: "GBP", TotalSeats: 200, AvailableSeats: 134},
	{ID: 10, FlightNumber: "BA311", Airline: "British Airways", Origin: "Delhi", Destination: "London", DepartureDate: "2026-02-23", DepartureTime: "09:00", ArrivalTime: "15:30", Duration: "9h 30m", CabinClass: "Business", Price: 1950.00, Currency: "GBP", TotalSeats: 40, AvailableSeats: 22},
	// Delhi → Paris, 21 Feb
	{ID: 11, FlightNumber: "AF201", Airline: "Air France", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-21", DepartureTime: "09:30", ArrivalTime: "15:00", Duration: "8h 30m", CabinClass: "Economy", Price: 590.00, Currency: "EUR", TotalSeats: 160, AvailableSeats: 34},
	{ID: 12, FlightNumber: "AF201", Airline: "Air France", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-21", DepartureTime: "09:30", ArrivalTime: "15:00", Duration: "8h 30m", CabinClass: "Business", Price: 1400.00, Currency: "EUR", TotalSeats: 45, AvailableSeats: 7},
	{ID: 13, FlightNumber: "AI301", Airline: "Air India", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-21", DepartureTime: "13:00", ArrivalTime: "18:30", Duration: "8h 30m", CabinClass: "Economy", Price: 520.00, Currency: "EUR", TotalSeats: 160, AvailableSeats: 56},
	// Delhi → Paris, 22 Feb
	{ID: 14, FlightNumber: "AF203", Airline: "Air France", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-22", DepartureTime: "11:00", ArrivalTime: "16:30", Duration: "8h 30m", CabinClass: "Economy", Price: 540.00, Currency: "EUR", TotalSeats: 160, AvailableSeats: 89},
	{ID: 15, FlightNumber: "AF203", Airline: "Air France", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-22", DepartureTime: "11:00", ArrivalTime: "16:30", Duration: "8h 30m", CabinClass: "Business", Price: 1350.00, Currency: "EUR", TotalSeats: 45, AvailableSeats: 14},
	{ID: 16, FlightNumber: "AI303", Airline: "Air India", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-22", DepartureTime: "20:00", ArrivalTime: "01:30", Duration: "8h 30m", CabinClass: "Economy", Price: 480.00, Currency: "EUR", TotalSeats: 160, AvailableSeats: 102},
	// Delhi → Paris, 23 Feb
	{ID: 17, FlightNumber: "AF205", Airline: "Air France", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-23", DepartureTime: "22:30", ArrivalTime: "04:00", Duration: "8h 30m", CabinClass: "Economy", Price: 610.00, Currency: "EUR", TotalSeats: 160, AvailableSeats: 21},
	{ID: 18, FlightNumber: "AI305", Airline: "Air India", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-23", DepartureTime: "07:00", ArrivalTime: "12:30", Duration: "8h 30m", CabinClass: "Economy", Price: 560.00, Currency: "EUR", TotalSeats: 160, AvailableSeats: 45},
	{ID: 19, FlightNumber: "AI305", Airline: "Air India", Origin: "Delhi", Destination: "Paris", DepartureDate: "2026-02-23", DepartureTime: "07:00", ArrivalTime: "12:30", Duration: "8h 30m", CabinClass: "Business", Price: 1250.00, Currency: "EUR", TotalSeats: 45, AvailableSeats: 9},
}

// seedIfEmpty loads the demo dataset the first time the service starts
// against an empty collection.
func (r *MongoFlightRepo) seedIfEmpty() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count flights: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seedFlights))
	for _, f := range seedFlights {
		docs = append(docs, f)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed flights: %w", err)
	}
	return nil
}
