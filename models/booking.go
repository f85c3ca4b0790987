package models

// BookingStage tracks where in the conversation flow a booking is.
type BookingStage string

const (
	StageCollectingInfo BookingStage = "collecting_info"
	StageShowingOptions BookingStage = "showing_options"
	StageConfirmed      BookingStage = "confirmed"
)

// BookingStatus is the commercial status of the booking itself.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

const (
	CabinEconomy  = "Economy"
	CabinBusiness = "Business"
)

// Booking is the single mutable record tracking one reservation attempt.
// Fields are accumulated across turns; route fields stay empty until the
// customer mentions them, selection fields are set once a flight is chosen.
type Booking struct {
	BookingID string        `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	Stage     BookingStage  `bson:"stage" json:"stage"`
	Status    BookingStatus `bson:"status" json:"status"`

	// Route
	Origin        string `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination   string `bson:"destination,omitempty" json:"destination,omitempty"`
	DepartureDate string `bson:"departure_date,omitempty" json:"departureDate,omitempty"`
	ReturnDate    string `bson:"return_date,omitempty" json:"returnDate,omitempty"`

	// Preferences
	Travelers  int    `bson:"travelers" json:"travelers"`
	CabinClass string `bson:"cabin_class" json:"cabinClass"`

	// Selected flight (set once the customer picks one)
	SelectedFlightID int     `bson:"selected_flight_id,omitempty" json:"selectedFlightId,omitempty"`
	FlightNumber     string  `bson:"flight_number,omitempty" json:"flightNumber,omitempty"`
	Airline          string  `bson:"airline,omitempty" json:"airline,omitempty"`
	Price            float64 `bson:"price,omitempty" json:"price,omitempty"`
	Currency         string  `bson:"currency,omitempty" json:"currency,omitempty"`
}

// NewBooking returns a blank booking at the start of the flow.
func NewBooking() Booking {
	return Booking{
		Stage:      StageCollectingInfo,
		Status:     BookingPending,
		Travelers:  1,
		CabinClass: CabinEconomy,
	}
}

// MissingFields lists the required fields not yet collected, in the order
// they should be asked for.
func (b Booking) MissingFields() []string {
	var missing []string
	if b.Destination == "" {
		missing = append(missing, "destination")
	}
	if b.DepartureDate == "" {
		missing = append(missing, "departure_date")
	}
	return missing
}

// IsInProgress reports whether a booking flow has started but not finished.
func (b Booking) IsInProgress() bool {
	return b.Stage == StageCollectingInfo || b.Stage == StageShowingOptions
}
