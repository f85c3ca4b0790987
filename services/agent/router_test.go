package agent

import (
	"context"
	"errors"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
)

func TestRouter_InProgressBookingAlwaysWins(t *testing.T) {
	// The completion client would answer "information", but it must never be
	// consulted while a booking is mid-flow.
	completion := &stubCompletion{responses: []string{`{"agent": "information", "confidence": 0.9}`}}
	router := NewRouter(completion)

	session := models.NewSession("s1")
	session.Booking.Stage = models.StageShowingOptions

	label := router.Route(context.Background(), session, "yes that works")
	assert.Equal(t, AgentBooking, label)
	assert.Zero(t, completion.calls)
}

func TestRouter_ClassifiesWhenNoBookingInFlight(t *testing.T) {
	completion := &stubCompletion{responses: []string{`{"agent": "complaint", "confidence": 0.8}`}}
	router := NewRouter(completion)

	session := models.NewSession("s1")
	session.Booking.Stage = models.StageConfirmed

	label := router.Route(context.Background(), session, "my flight was delayed for hours")
	assert.Equal(t, AgentComplaint, label)
}

func TestRouter_KeywordFallbackOnCompletionError(t *testing.T) {
	completion := &stubCompletion{responses: []string{""}, errs: []error{errors.New("boom")}}
	router := NewRouter(completion)

	session := models.NewSession("s1")
	session.Booking.Stage = models.StageConfirmed

	label := router.Route(context.Background(), session, "I want a refund, this is a problem")
	assert.Equal(t, AgentComplaint, label)
}

func TestRouter_KeywordFallbackOnGarbageOutput(t *testing.T) {
	completion := &stubCompletion{responses: []string{"certainly! here is my answer"}}
	router := NewRouter(completion)

	session := models.NewSession("s1")
	session.Booking.Stage = models.StageConfirmed

	label := router.Route(context.Background(), session, "book me a flight to Paris")
	assert.Equal(t, AgentBooking, label)
}

func TestRouter_InvalidLabelDefaultsToBooking(t *testing.T) {
	completion := &stubCompletion{responses: []string{`{"agent": "weather", "confidence": 1.0}`}}
	router := NewRouter(completion)

	session := models.NewSession("s1")
	session.Booking.Stage = models.StageConfirmed

	label := router.Route(context.Background(), session, "hmm")
	assert.Equal(t, AgentBooking, label)
}

func TestKeywordRoute_DefaultsToBooking(t *testing.T) {
	assert.Equal(t, AgentBooking, keywordRoute("ok"))
	assert.Equal(t, AgentBooking, keywordRoute("I need a ticket"))
	assert.Equal(t, AgentComplaint, keywordRoute("there is a problem with my refund"))
}
