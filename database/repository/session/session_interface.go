package sessionRepo

import (
	"context"
	"time"

	"voyago/models"
)

// SessionRepository is the durable store of conversation state. All
// conversational continuity comes from this store; a freshly started
// process must be able to resume any session from it.
type SessionRepository interface {
	// Load returns the session, or (nil, nil) when none exists.
	Load(ctx context.Context, sessionID string) (*models.Session, error)
	// Save upserts the session, preserving CreatedAt across updates and
	// stamping UpdatedAt.
	Save(ctx context.Context, session *models.Session) error
	// Delete removes a session; it reports whether one existed.
	Delete(ctx context.Context, sessionID string) (bool, error)
	// List returns lightweight summaries of all stored sessions.
	List(ctx context.Context) ([]models.SessionSummary, error)
	// CleanupOlderThan removes sessions not updated within the given age
	// and returns how many were removed.
	CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error)
}
