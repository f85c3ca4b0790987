package agent

import (
	"context"
	"fmt"
	"time"

	flightRepo "voyago/database/repository/flight"
	"voyago/models"
	ai "voyago/services/intelligence"
	"voyago/utils"

	"go.uber.org/zap"
)

const optionsPromptTemplate = `You are a friendly travel booking assistant.
The customer wants to fly from %s to %s on %s.

Here are the available flights from our database:
%s

Write a clear, friendly response that:
1. Confirms the route and date
2. Shows flights as a numbered list: flight number, airline, time, cabin, price, seats left
3. Highlights the best-value Economy option
4. Ends with: "Reply with the flight number (e.g. %s) or the list number to book."
Keep it concise and keep the list numbering exactly as given.`

// BookingAgent drives the booking conversation through three stages:
//
//	collecting_info  -> ask for missing fields one at a time
//	showing_options  -> search the catalog and present numbered flights
//	confirmed        -> customer picked a flight; confirm it
type BookingAgent struct {
	flights       flightRepo.FlightRepository
	extractor     *ai.IntentExtractor
	completion    ai.CompletionClient
	defaultOrigin string
}

func NewBookingAgent(
	flights flightRepo.FlightRepository,
	extractor *ai.IntentExtractor,
	completion ai.CompletionClient,
	defaultOrigin string,
) *BookingAgent {
	return &BookingAgent{
		flights:       flights,
		extractor:     extractor,
		completion:    completion,
		defaultOrigin: defaultOrigin,
	}
}

func (a *BookingAgent) Name() string { return "booking_agent" }

// HandleTurn advances the stage machine by one user message. It mutates the
// session it is given; callers pass a clone and swap it in only when no
// error comes back, so a failed turn can't corrupt the persisted record.
func (a *BookingAgent) HandleTurn(ctx context.Context, session *models.Session, message string) (string, error) {
	stage := session.Booking.Stage

	// A confirmed booking is immutable. A further booking request in the
	// same session starts a brand-new record; only then may the stage go
	// back to collecting_info.
	if stage == models.StageConfirmed {
		session.Booking = models.NewBooking()
		session.LastResults = nil
		stage = session.Booking.Stage
	}

	// Extract whatever new info this message carries and merge it on top of
	// what we already know.
	intent := a.extractor.Extract(ctx, message, session.RecentHistory(6))
	a.mergeIntent(&session.Booking, intent)

	// Mid-selection: is the customer picking one of the shown flights?
	if stage == models.StageShowingOptions {
		refs := DetectSelection(message, intent)
		if len(refs) > 0 {
			return a.handleSelection(ctx, session, refs)
		}
	}

	// Ask for the first missing required field.
	if missing := session.Booking.MissingFields(); len(missing) > 0 {
		session.Booking.Stage = models.StageCollectingInfo
		response := a.askForMissing(missing[0], session.Booking)
		session.AddMessage(models.RoleAgent, response, a.Name())
		return response, nil
	}

	// Everything collected, search and present options.
	return a.showOptions(ctx, session)
}

// mergeIntent overlays non-zero extracted fields onto the booking, then
// applies defaults. Extracted values overwrite stale ones; absent fields are
// left untouched.
func (a *BookingAgent) mergeIntent(b *models.Booking, intent models.TravelIntent) {
	if intent.Origin != "" {
		b.Origin = intent.Origin
	}
	if intent.Destination != "" {
		b.Destination = intent.Destination
	}
	if intent.DepartureDate != "" {
		b.DepartureDate = intent.DepartureDate
	}
	if intent.ReturnDate != "" {
		b.ReturnDate = intent.ReturnDate
	}
	if intent.CabinClass != "" {
		b.CabinClass = intent.CabinClass
	}
	if intent.Travelers > 0 {
		b.Travelers = intent.Travelers
	}

	if b.Origin == "" {
		b.Origin = a.defaultOrigin
	}
	if b.CabinClass == "" {
		b.CabinClass = models.CabinEconomy
	}
	if b.Travelers == 0 {
		b.Travelers = 1
	}
}

func (a *BookingAgent) askForMissing(field string, b models.Booking) string {
	switch field {
	case "destination":
		return askDestination(b.Origin)
	case "departure_date":
		return askDepartureDate(b.Origin, b.Destination)
	default:
		return fmt.Sprintf("Could you please tell me your %s?", field)
	}
}

// showOptions searches the catalog, caches the raw result set on the session
// for later selection matching, and presents a numbered list.
func (a *BookingAgent) showOptions(ctx context.Context, session *models.Session) (string, error) {
	logger := utils.GetLogger()
	b := session.Booking

	logger.Info("booking: searching flights",
		zap.String("origin", b.Origin),
		zap.String("destination", b.Destination),
		zap.String("date", b.DepartureDate))

	flights, err := a.flights.Search(ctx, b.Origin, b.Destination, b.DepartureDate)
	if err != nil {
		return "", fmt.Errorf("flight search failed: %w", err)
	}

	if len(flights) == 0 {
		// Stay in collecting_info so the customer can give a new route or
		// date; nothing is cached.
		session.Booking.Stage = models.StageCollectingInfo
		response := flightRepo.NoFlightsMessage(b.Origin, b.Destination, b.DepartureDate)
		session.AddMessage(models.RoleAgent, response, a.Name())
		return response, nil
	}

	session.LastResults = flights
	session.Booking.Stage = models.StageShowingOptions

	response := a.phraseOptions(ctx, b, flights)
	session.AddMessage(models.RoleAgent, response, a.Name())
	return response, nil
}

// phraseOptions asks the completion service to word the list, falling back
// to the deterministic rendering when the call fails.
func (a *BookingAgent) phraseOptions(ctx context.Context, b models.Booking, flights []models.Flight) string {
	fallback := optionsMessage(b.Origin, b.Destination, b.DepartureDate, flights)

	prompt := fmt.Sprintf(optionsPromptTemplate,
		b.Origin, b.Destination, dateLabel(b.DepartureDate),
		formatFlightList(flights),
		flights[0].FlightNumber)

	phrased, err := a.completion.Complete(ctx, prompt)
	if err != nil || phrased == "" {
		utils.GetLogger().Warn("booking: options phrasing failed, using fallback", zap.Error(err))
		return fallback
	}
	return phrased
}

// handleSelection resolves the customer's choice against the cached result
// set and confirms the booking, or re-prompts without a stage change.
func (a *BookingAgent) handleSelection(ctx context.Context, session *models.Session, refs []SelectionRef) (string, error) {
	flight := ResolveSelection(refs, session.LastResults)
	if flight == nil {
		// Never guess: ask again, stage stays at showing_options.
		session.AddMessage(models.RoleAgent, selectionRePrompt, a.Name())
		return selectionRePrompt, nil
	}

	bookingID := newBookingID()
	b := &session.Booking
	b.BookingID = bookingID
	b.Stage = models.StageConfirmed
	b.Status = models.BookingConfirmed
	b.SelectedFlightID = flight.ID
	b.FlightNumber = flight.FlightNumber
	b.Airline = flight.Airline
	b.Price = flight.Price
	b.Currency = flight.Currency

	utils.GetLogger().Info("booking: confirmed",
		zap.String("booking_id", bookingID),
		zap.Int("flight_id", flight.ID),
		zap.String("flight_number", flight.FlightNumber))

	response := confirmationMessage(*flight, b.Travelers, bookingID)
	session.AddMessage(models.RoleAgent, response, a.Name())
	return response, nil
}

// newBookingID derives a reference from the wall clock. References are only
// ever compared for uniqueness, never for order; a multi-instance deployment
// would need a shared scheme instead.
func newBookingID() string {
	return "BK" + time.Now().Format("20060102150405")
}
