package models

// Flight is a single cabin-class fare on a route, as stored in the flight
// catalog. Read-only to the booking engine.
type Flight struct {
	ID             int     `bson:"id" json:"id"`
	FlightNumber   string  `bson:"flight_number" json:"flightNumber"`
	Airline        string  `bson:"airline" json:"airline"`
	Origin         string  `bson:"origin" json:"origin"`
	Destination    string  `bson:"destination" json:"destination"`
	DepartureDate  string  `bson:"departure_date" json:"departureDate"`
	DepartureTime  string  `bson:"departure_time" json:"departureTime"`
	ArrivalTime    string  `bson:"arrival_time" json:"arrivalTime"`
	Duration       string  `bson:"duration" json:"duration"`
	CabinClass     string  `bson:"cabin_class" json:"cabinClass"`
	Price          float64 `bson:"price" json:"price"`
	Currency       string  `bson:"currency" json:"currency"`
	TotalSeats     int     `bson:"total_seats" json:"totalSeats"`
	AvailableSeats int     `bson:"available_seats" json:"availableSeats"`
}
