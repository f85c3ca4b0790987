package agent

import (
	"context"
	"fmt"

	ai "voyago/services/intelligence"
	"voyago/utils"

	"go.uber.org/zap"
)

const complaintPromptTemplate = `You are a travel customer service agent handling a complaint.
Be empathetic and concrete. Acknowledge the issue, apologise once, and state
the next step (refund timelines are 5-7 business days; cancellations are free
up to 24h before departure). Do not invent booking details.

Recent conversation:
%s

Customer complaint: %s`

const informationPromptTemplate = `You are a travel information assistant.
Answer the customer's question concisely using the reference notes when they
are relevant. If the question is really a booking request, invite them to
start a booking instead.

Reference notes:
%s

Recent conversation:
%s

Question: %s`

const complaintFallback = "I'm sorry about the trouble. I've noted your complaint and our " +
	"support team will follow up within 24 hours. Refunds, once approved, take 5-7 business days."

const informationFallback = "I can help with flight bookings from Delhi to London or Paris " +
	"between 21 and 23 Feb 2026. Just tell me where you'd like to go."

// KnowledgeRetriever is the narrow contract on the external travel knowledge
// base. The information responder works without one configured.
type KnowledgeRetriever interface {
	Retrieve(ctx context.Context, query string) (string, error)
}

// ComplaintAgent phrases complaint replies via the completion service.
type ComplaintAgent struct {
	completion ai.CompletionClient
}

func NewComplaintAgent(completion ai.CompletionClient) *ComplaintAgent {
	return &ComplaintAgent{completion: completion}
}

func (a *ComplaintAgent) Name() string { return "complaint_agent" }

func (a *ComplaintAgent) Respond(ctx context.Context, history, message string) string {
	prompt := fmt.Sprintf(complaintPromptTemplate, history, message)
	reply, err := a.completion.Complete(ctx, prompt)
	if err != nil || reply == "" {
		utils.GetLogger().Warn("complaint: phrasing failed, using fallback", zap.Error(err))
		return complaintFallback
	}
	return reply
}

// InformationAgent answers general travel questions, consulting the
// knowledge retriever when one is wired in.
type InformationAgent struct {
	completion ai.CompletionClient
	knowledge  KnowledgeRetriever
}

func NewInformationAgent(completion ai.CompletionClient, knowledge KnowledgeRetriever) *InformationAgent {
	return &InformationAgent{completion: completion, knowledge: knowledge}
}

func (a *InformationAgent) Name() string { return "information_agent" }

func (a *InformationAgent) Respond(ctx context.Context, history, message string) string {
	notes := "(none)"
	if a.knowledge != nil {
		if retrieved, err := a.knowledge.Retrieve(ctx, message); err == nil && retrieved != "" {
			notes = retrieved
		} else if err != nil {
			utils.GetLogger().Warn("information: knowledge retrieval failed", zap.Error(err))
		}
	}

	prompt := fmt.Sprintf(informationPromptTemplate, notes, history, message)
	reply, err := a.completion.Complete(ctx, prompt)
	if err != nil || reply == "" {
		utils.GetLogger().Warn("information: phrasing failed, using fallback", zap.Error(err))
		return informationFallback
	}
	return reply
}
