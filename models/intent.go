package models

// TravelIntent is the partial result of extracting booking fields from one
// customer message. Zero values mean "not mentioned"; only non-zero fields
// are merged onto the running booking.
type TravelIntent struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Travelers     int    `json:"travelers"`
	CabinClass    string `json:"cabin_class"`
	FlightNumber  string `json:"flight_number"`
	FlightID      int    `json:"flight_id"`
}

// IsEmpty reports whether nothing at all was extracted.
func (i TravelIntent) IsEmpty() bool {
	return i == TravelIntent{}
}
