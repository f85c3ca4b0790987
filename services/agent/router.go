package agent

import (
	"context"
	"fmt"
	"strings"

	"voyago/models"
	ai "voyago/services/intelligence"
	"voyago/utils"

	"go.uber.org/zap"
)

// Agent labels the router can produce.
const (
	AgentBooking     = "booking"
	AgentComplaint   = "complaint"
	AgentInformation = "information"
)

const routingPromptTemplate = `You are a travel customer service router.

Given the conversation history and the latest customer message, choose ONE agent:

  booking     - customer wants to search, book, or select a flight
  complaint   - customer has a complaint, cancellation, refund, or service issue
  information - customer only wants general travel information with no booking intent

IMPORTANT RULES:
- If the customer mentions a city, date, or number of passengers -> booking
- If the customer says yes/ok/confirm/sounds good after seeing options -> booking
- When in doubt between booking and information -> choose booking
- Default to booking for short or ambiguous replies if the history is about flights

Return ONLY valid JSON, no markdown:
{"agent": "booking"|"complaint"|"information", "confidence": 0.0-1.0}

Recent conversation:
%s

Latest message: %s`

var bookingKeywords = []string{"book", "reserve", "flight", "fly", "ticket", "hotel", "trip", "travel", "seat", "passenger"}
var complaintKeywords = []string{"complaint", "problem", "cancel", "refund", "delay", "wrong", "issue"}

// Router decides which specialist handles a turn. It only updates routing
// fields on the session and never appends a visible message.
type Router struct {
	completion ai.CompletionClient
}

func NewRouter(completion ai.CompletionClient) *Router {
	return &Router{completion: completion}
}

// Route picks the handling agent for this turn.
//
// Priority order:
//  1. booking stage: a booking mid-flow always routes to booking, with no
//     classification call, so an in-progress booking can't be derailed by a
//     misclassified follow-up
//  2. completion classification over the last 4 messages
//  3. keyword fallback if the completion call or its output fails
func (r *Router) Route(ctx context.Context, session *models.Session, message string) string {
	logger := utils.GetLogger()

	if session.Booking.IsInProgress() {
		logger.Debug("router: booking in progress, skipping classification",
			zap.String("stage", string(session.Booking.Stage)))
		return AgentBooking
	}

	label := r.classify(ctx, session, message)

	logger.Debug("router: classified turn",
		zap.String("stage", string(session.Booking.Stage)),
		zap.String("agent", label))
	return label
}

func (r *Router) classify(ctx context.Context, session *models.Session, message string) string {
	prompt := fmt.Sprintf(routingPromptTemplate, session.RecentHistory(4), message)

	raw, err := r.completion.Complete(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("router: completion failed, falling back to keywords", zap.Error(err))
		return keywordRoute(message)
	}

	var result struct {
		Agent      string  `json:"agent"`
		Confidence float64 `json:"confidence"`
	}
	if err := ai.ExtractJSON(raw, &result); err != nil {
		utils.GetLogger().Warn("router: unparseable classification, falling back to keywords", zap.Error(err))
		return keywordRoute(message)
	}

	switch result.Agent {
	case AgentBooking, AgentComplaint, AgentInformation:
		return result.Agent
	default:
		return AgentBooking
	}
}

// keywordRoute is the no-LLM fallback. Booking is the safer default for
// ambiguous short replies.
func keywordRoute(message string) string {
	q := strings.ToLower(message)
	for _, w := range bookingKeywords {
		if strings.Contains(q, w) {
			return AgentBooking
		}
	}
	for _, w := range complaintKeywords {
		if strings.Contains(q, w) {
			return AgentComplaint
		}
	}
	return AgentBooking
}
