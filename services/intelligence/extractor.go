package ai

import (
	"context"
	"fmt"

	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

const extractPromptTemplate = `Extract travel booking information from the customer message.
Return ONLY a JSON object (no markdown) with these keys (null if not mentioned):
{
  "origin"         : "departure city, or null",
  "destination"    : "arrival city e.g. London or Paris",
  "departure_date" : "ISO date YYYY-MM-DD (21/22/23 Feb 2026 -> 2026-02-21/22/23)",
  "return_date"    : "ISO date or null",
  "travelers"      : integer or null,
  "cabin_class"    : "Economy or Business or null",
  "flight_number"  : "e.g. AI103, if the customer is selecting a specific flight",
  "flight_id"      : integer, if the customer says 'flight ID 5' or 'book ID 3'
}

Conversation so far:
%s

Latest message: %s`

// IntentExtractor turns one customer message (plus recent history) into a
// partial TravelIntent via a completion call.
type IntentExtractor struct {
	completion CompletionClient
}

func NewIntentExtractor(completion CompletionClient) *IntentExtractor {
	return &IntentExtractor{completion: completion}
}

// Extract is fail-open: on any completion or parse failure it returns an
// empty intent and logs a warning rather than aborting the turn.
func (e *IntentExtractor) Extract(ctx context.Context, message, history string) models.TravelIntent {
	logger := utils.GetLogger()

	prompt := fmt.Sprintf(extractPromptTemplate, history, message)
	raw, err := e.completion.Complete(ctx, prompt)
	if err != nil {
		logger.Warn("intent extraction: completion failed", zap.Error(err))
		return models.TravelIntent{}
	}

	var intent models.TravelIntent
	if err := ExtractJSON(raw, &intent); err != nil {
		logger.Warn("intent extraction: unparseable completion output",
			zap.Error(err), zap.String("raw", raw))
		return models.TravelIntent{}
	}
	return intent
}
