package models

import "time"

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse is the per-turn reply. SessionID must be passed back on the
// next turn for conversation continuity.
type ChatResponse struct {
	Response     string       `json:"response"`
	SessionID    string       `json:"sessionId"`
	AgentUsed    string       `json:"agentUsed,omitempty"`
	IsComplete   bool         `json:"isComplete"`
	BookingInfo  *Booking     `json:"bookingInfo,omitempty"`
	BookingStage BookingStage `json:"bookingStage,omitempty"`
}

// ConversationHistory is the full message replay for one session.
type ConversationHistory struct {
	SessionID string                `json:"sessionId"`
	Messages  []ConversationMessage `json:"messages"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}
