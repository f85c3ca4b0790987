package agent

import (
	"fmt"
	"strings"

	"voyago/models"
)

// lowSeatThreshold marks flights worth a "book soon" warning.
const lowSeatThreshold = 15

var dateLabels = map[string]string{
	"2026-02-21": "21 Feb (Sat)",
	"2026-02-22": "22 Feb (Sun)",
	"2026-02-23": "23 Feb (Mon)",
}

func dateLabel(date string) string {
	if label, ok := dateLabels[date]; ok {
		return label
	}
	return date
}

// formatFlightList renders search results as the numbered list the customer
// picks from. Position numbers here are what ByPosition selection resolves
// against, so ordering must match the cached result set exactly.
func formatFlightList(flights []models.Flight) string {
	var sb strings.Builder
	for i, f := range flights {
		seatsWarn := ""
		if f.AvailableSeats < lowSeatThreshold {
			seatsWarn = ", only a few left!"
		}
		fmt.Fprintf(&sb, "  %d. %s (%s)  %s->%s  %s  %s %.0f  [%d seats%s]  (ID: %d)\n",
			i+1, f.FlightNumber, f.Airline,
			f.DepartureTime, f.ArrivalTime,
			f.CabinClass,
			f.Currency, f.Price,
			f.AvailableSeats, seatsWarn,
			f.ID)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// optionsMessage is the deterministic presentation of a result set, used
// directly when completion phrasing is unavailable.
func optionsMessage(origin, destination, date string, flights []models.Flight) string {
	return fmt.Sprintf(
		"Here are the available flights from %s to %s on %s:\n\n%s\n\n"+
			"Reply with the flight number (e.g. %s) or the list number (e.g. 1) to book.",
		origin, destination, dateLabel(date),
		formatFlightList(flights),
		flights[0].FlightNumber,
	)
}

// confirmationMessage restates route, date, time, cabin, price and the
// booking reference.
func confirmationMessage(f models.Flight, travelers int, bookingID string) string {
	return fmt.Sprintf(
		"Your booking is confirmed!\n\n"+
			"Flight : %s (%s)\n"+
			"Route  : %s -> %s\n"+
			"Date   : %s\n"+
			"Time   : %s -> %s (%s)\n"+
			"Cabin  : %s\n"+
			"Price  : %s %.0f\n"+
			"Travelers : %d\n"+
			"Booking reference: %s\n\n"+
			"Check-in opens 24h before departure; please arrive 3h early for international flights. "+
			"Anything else I can help with, maybe a hotel or a return flight?",
		f.FlightNumber, f.Airline,
		f.Origin, f.Destination,
		dateLabel(f.DepartureDate),
		f.DepartureTime, f.ArrivalTime, f.Duration,
		f.CabinClass,
		f.Currency, f.Price,
		travelers,
		bookingID,
	)
}

// askDestination prompts for the first missing required field.
func askDestination(origin string) string {
	return fmt.Sprintf(
		"I'd love to help you book a flight from %s!\n\n"+
			"Where would you like to fly to?\n"+
			"  - London\n"+
			"  - Paris",
		origin,
	)
}

// askDepartureDate also solicits traveler count and cabin class, with the
// defaults stated, so the follow-up turn can collect everything at once.
func askDepartureDate(origin, destination string) string {
	return fmt.Sprintf(
		"Great, %s to %s! Which date would you like to travel?\n\n"+
			"  - 21 Feb 2026 (Saturday)\n"+
			"  - 22 Feb 2026 (Sunday)\n"+
			"  - 23 Feb 2026 (Monday)\n\n"+
			"Also, how many passengers and which cabin, Economy or Business? "+
			"(defaults: 1 passenger, Economy)",
		origin, destination,
	)
}

const selectionRePrompt = "I couldn't find that flight in the options shown. " +
	"Please reply with the flight number (e.g. AI103) or list number (e.g. 1)."

const genericRePrompt = "I'm sorry, something went wrong. Could you repeat your travel details? " +
	"(e.g. 'Delhi to London on 22 Feb, 1 passenger, Economy')"
