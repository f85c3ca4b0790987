package models

import "time"

// Message roles.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// ConversationMessage is one entry in a session's append-only history.
type ConversationMessage struct {
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	AgentName string    `bson:"agent_name,omitempty" json:"agentName,omitempty"`
}

// Session is the durable unit of one customer conversation. LastResults holds
// the flight list shown on the most recent search so a later turn can resolve
// "book number 2" without re-querying the catalog.
type Session struct {
	SessionID   string                `bson:"session_id" json:"sessionId"`
	Messages    []ConversationMessage `bson:"messages" json:"messages"`
	Booking     Booking               `bson:"booking" json:"booking"`
	LastResults []Flight              `bson:"last_results,omitempty" json:"lastResults,omitempty"`
	QueryType   string                `bson:"query_type,omitempty" json:"queryType,omitempty"`
	CreatedAt   time.Time             `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time             `bson:"updated_at" json:"updatedAt"`
}

// NewSession creates a blank session for a first-contact conversation.
func NewSession(sessionID string) *Session {
	now := time.Now()
	return &Session{
		SessionID: sessionID,
		Booking:   NewBooking(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy. Turns mutate the copy and swap it in only on
// success, so a failed turn never leaves a half-merged session behind.
func (s *Session) Clone() *Session {
	dup := *s
	dup.Messages = make([]ConversationMessage, len(s.Messages))
	copy(dup.Messages, s.Messages)
	if s.LastResults != nil {
		dup.LastResults = make([]Flight, len(s.LastResults))
		copy(dup.LastResults, s.LastResults)
	}
	return &dup
}

// AddMessage appends to the conversation history. Messages are never removed.
func (s *Session) AddMessage(role, content, agentName string) {
	s.Messages = append(s.Messages, ConversationMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		AgentName: agentName,
	})
	s.UpdatedAt = time.Now()
}

// RecentHistory formats the last n messages as plain text for prompts.
func (s *Session) RecentHistory(n int) string {
	msgs := s.Messages
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	if len(msgs) == 0 {
		return "(start of conversation)"
	}
	out := ""
	for i, m := range msgs {
		role := "Agent"
		if m.Role == RoleUser {
			role = "Customer"
		}
		content := m.Content
		if len(content) > 200 {
			content = content[:200]
		}
		if i > 0 {
			out += "\n"
		}
		out += role + ": " + content
	}
	return out
}

// SessionSummary is the listing projection returned by the sessions endpoint.
type SessionSummary struct {
	SessionID    string       `bson:"session_id" json:"sessionId"`
	MessageCount int          `bson:"message_count" json:"messageCount"`
	BookingStage BookingStage `bson:"booking_stage" json:"bookingStage"`
	CreatedAt    time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updatedAt"`
}
