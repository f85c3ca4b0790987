package agent

import (
	"regexp"
	"strconv"
	"strings"

	"voyago/models"
)

// SelectionKind tags how the customer referenced a flight. The three kinds
// form a prioritized rule chain; precedence lives in DetectSelection, not in
// ad hoc string matching.
type SelectionKind int

const (
	// ByCode matches an exact flight number, e.g. "AI103".
	ByCode SelectionKind = iota
	// ByID matches a numeric catalog id.
	ByID
	// ByPosition matches a 1-based position in the last displayed list.
	ByPosition
)

// SelectionRef is one way of resolving the customer's choice against the
// cached result set.
type SelectionRef struct {
	Kind SelectionKind
	Code string
	Num  int
}

var (
	flightCodeRe = regexp.MustCompile(`\b([A-Z]{2}\d{3,4})\b`)
	bareNumberRe = regexp.MustCompile(`\b(?:ID|NUMBER)?\s*(\d{1,3})\b`)
)

// DetectSelection inspects the extracted intent and the raw message and
// returns candidate references in resolution priority order:
//
//  1. extracted flight_id        -> ByID
//  2. extracted flight_number    -> ByCode
//  3. airline-code regex on text -> ByCode
//  4. bare small integer on text -> ByID, then ByPosition
//
// An empty result means the message doesn't look like a selection at all.
func DetectSelection(message string, intent models.TravelIntent) []SelectionRef {
	if intent.FlightID > 0 {
		return []SelectionRef{
			{Kind: ByID, Num: intent.FlightID},
			{Kind: ByPosition, Num: intent.FlightID},
		}
	}
	if intent.FlightNumber != "" {
		return []SelectionRef{{Kind: ByCode, Code: strings.ToUpper(intent.FlightNumber)}}
	}

	q := strings.ToUpper(strings.TrimSpace(message))
	if m := flightCodeRe.FindStringSubmatch(q); m != nil {
		return []SelectionRef{{Kind: ByCode, Code: m[1]}}
	}
	if m := bareNumberRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return []SelectionRef{
				{Kind: ByID, Num: n},
				{Kind: ByPosition, Num: n},
			}
		}
	}
	return nil
}

// ResolveSelection tries each reference against the cached result set and
// returns the first flight that matches, or nil when nothing resolves. The
// caller must not guess beyond this: no match means re-prompt.
func ResolveSelection(refs []SelectionRef, flights []models.Flight) *models.Flight {
	for _, ref := range refs {
		switch ref.Kind {
		case ByCode:
			for i := range flights {
				if strings.EqualFold(flights[i].FlightNumber, ref.Code) {
					return &flights[i]
				}
			}
		case ByID:
			for i := range flights {
				if flights[i].ID == ref.Num {
					return &flights[i]
				}
			}
		case ByPosition:
			if ref.Num >= 1 && ref.Num <= len(flights) {
				return &flights[ref.Num-1]
			}
		}
	}
	return nil
}
