package agent

import (
	"context"
	"fmt"

	sessionRepo "voyago/database/repository/session"
	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TurnInput is one incoming customer message. SessionID is empty on first
// contact; the engine generates one and returns it for continuity.
type TurnInput struct {
	Message   string
	SessionID string
}

// TurnResult is the caller-facing outcome of one turn.
type TurnResult struct {
	Response     string
	SessionID    string
	AgentUsed    string
	IsComplete   bool
	Booking      models.Booking
	BookingStage models.BookingStage
}

// Engine runs the per-turn pipeline: resolve session -> route -> dispatch ->
// persist -> respond. Turns for one session must be serialized by the
// caller (single writer per session); turns for different sessions are
// independent.
type Engine struct {
	sessions    sessionRepo.SessionRepository
	router      *Router
	booking     *BookingAgent
	complaint   *ComplaintAgent
	information *InformationAgent
}

func NewEngine(
	sessions sessionRepo.SessionRepository,
	router *Router,
	booking *BookingAgent,
	complaint *ComplaintAgent,
	information *InformationAgent,
) *Engine {
	return &Engine{
		sessions:    sessions,
		router:      router,
		booking:     booking,
		complaint:   complaint,
		information: information,
	}
}

// ProcessTurn handles one message end to end.
//
// Agent failures degrade to a generic re-prompt on top of the last persisted
// state, so the booking record is never left half-merged. Store failures are
// the one class that surfaces as a hard error, since continuity can't be
// guaranteed without durable state.
func (e *Engine) ProcessTurn(ctx context.Context, input TurnInput) (*TurnResult, error) {
	logger := utils.GetLogger()

	session, err := e.resolveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	label := e.router.Route(ctx, session, input.Message)

	// Work on a copy; the original stays pristine for rollback.
	working := session.Clone()
	working.QueryType = label
	working.AddMessage(models.RoleUser, input.Message, "")

	var response, agentName string
	switch label {
	case AgentComplaint:
		agentName = e.complaint.Name()
		response = e.complaint.Respond(ctx, working.RecentHistory(4), input.Message)
		working.AddMessage(models.RoleAgent, response, agentName)
	case AgentInformation:
		agentName = e.information.Name()
		response = e.information.Respond(ctx, working.RecentHistory(4), input.Message)
		working.AddMessage(models.RoleAgent, response, agentName)
	default:
		agentName = e.booking.Name()
		response, err = e.booking.HandleTurn(ctx, working, input.Message)
		if err != nil {
			logger.Error("turn: booking agent failed, reverting to last state",
				zap.String("session_id", session.SessionID), zap.Error(err))
			// Rebuild from the untouched original: the user message plus a
			// generic re-prompt, nothing else changes.
			working = session.Clone()
			working.AddMessage(models.RoleUser, input.Message, "")
			working.AddMessage(models.RoleAgent, genericRePrompt, agentName)
			response = genericRePrompt
		}
	}

	if err := e.sessions.Save(ctx, working); err != nil {
		return nil, fmt.Errorf("failed to persist session %s: %w", working.SessionID, err)
	}

	return &TurnResult{
		Response:     response,
		SessionID:    working.SessionID,
		AgentUsed:    agentName,
		IsComplete:   working.Booking.Stage == models.StageConfirmed,
		Booking:      working.Booking,
		BookingStage: working.Booking.Stage,
	}, nil
}

// resolveSession loads an existing session or creates a fresh one. An
// unknown id is treated as a new conversation under that id rather than an
// error, so clients can survive a store sweep.
func (e *Engine) resolveSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return models.NewSession(uuid.NewString()), nil
	}
	session, err := e.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if session == nil {
		return models.NewSession(sessionID), nil
	}
	return session, nil
}
