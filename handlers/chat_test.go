package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	flightRepo "voyago/database/repository/flight"
	"voyago/models"
	"voyago/services/agent"
	ai "voyago/services/intelligence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletion struct{}

func (stubCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("completion unavailable")
}

type stubFlightRepo struct{}

func (stubFlightRepo) Search(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
	return nil, nil
}
func (stubFlightRepo) GetByID(ctx context.Context, id int) (*models.Flight, error) {
	return nil, flightRepo.ErrFlightNotFound
}
func (stubFlightRepo) CheckAvailability(ctx context.Context, id int) (*flightRepo.SeatAvailability, error) {
	return nil, flightRepo.ErrFlightNotFound
}

// memSessionRepo is an in-memory session store for handler tests.
type memSessionRepo struct {
	sessions map[string]*models.Session
	saveErr  error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*models.Session)}
}

func (m *memSessionRepo) Load(ctx context.Context, id string) (*models.Session, error) {
	return m.sessions[id], nil
}

func (m *memSessionRepo) Save(ctx context.Context, s *models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[s.SessionID] = s.Clone()
	return nil
}

func (m *memSessionRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.sessions[id]; !ok {
		return false, nil
	}
	delete(m.sessions, id)
	return true, nil
}

func (m *memSessionRepo) List(ctx context.Context) ([]models.SessionSummary, error) {
	var out []models.SessionSummary
	for _, s := range m.sessions {
		out = append(out, models.SessionSummary{
			SessionID:    s.SessionID,
			MessageCount: len(s.Messages),
			BookingStage: s.Booking.Stage,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return out, nil
}

func (m *memSessionRepo) CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	return 0, nil
}

func newTestRouter(sessions *memSessionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	completion := stubCompletion{}
	extractor := ai.NewIntentExtractor(completion)
	engine := agent.NewEngine(
		sessions,
		agent.NewRouter(completion),
		agent.NewBookingAgent(stubFlightRepo{}, extractor, completion, "Delhi"),
		agent.NewComplaintAgent(completion),
		agent.NewInformationAgent(completion, nil),
	)

	r := gin.New()
	r.POST("/api/chat", NewChatHandler(engine).HandleChat)
	conv := NewConversationHandler(sessions)
	r.GET("/api/conversation/:sessionID", conv.GetConversation)
	r.DELETE("/api/conversation/:sessionID", conv.DeleteConversation)
	r.GET("/api/sessions", conv.ListSessions)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body models.ChatRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint_FirstTurnReturnsSessionID(t *testing.T) {
	sessions := newMemSessionRepo()
	r := newTestRouter(sessions)

	w := postChat(t, r, models.ChatRequest{Message: "I want to book a flight"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, models.StageCollectingInfo, resp.BookingStage)
	assert.False(t, resp.IsComplete)
	assert.NotEmpty(t, resp.Response)
}

func TestChatEndpoint_RejectsEmptyMessage(t *testing.T) {
	sessions := newMemSessionRepo()
	r := newTestRouter(sessions)

	w := postChat(t, r, models.ChatRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpoint_StoreFailureIsServerError(t *testing.T) {
	sessions := newMemSessionRepo()
	sessions.saveErr = errors.New("store down")
	r := newTestRouter(sessions)

	w := postChat(t, r, models.ChatRequest{Message: "hello"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The raw store error never leaks to the caller.
	assert.NotContains(t, w.Body.String(), "store down")
}

func TestConversationEndpoints_ReplayAndDelete(t *testing.T) {
	sessions := newMemSessionRepo()
	r := newTestRouter(sessions)

	w := postChat(t, r, models.ChatRequest{Message: "I want to book a flight"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Replay
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/conversation/"+resp.SessionID, nil))
	require.Equal(t, http.StatusOK, w2.Code)
	var history models.ConversationHistory
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &history))
	require.Len(t, history.Messages, 2)
	assert.Equal(t, models.RoleUser, history.Messages[0].Role)

	// Delete, then replay is a 404.
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodDelete, "/api/conversation/"+resp.SessionID, nil))
	assert.Equal(t, http.StatusOK, w3.Code)

	w4 := httptest.NewRecorder()
	r.ServeHTTP(w4, httptest.NewRequest(http.MethodGet, "/api/conversation/"+resp.SessionID, nil))
	assert.Equal(t, http.StatusNotFound, w4.Code)
}

func TestConversationEndpoint_UnknownSessionIs404(t *testing.T) {
	sessions := newMemSessionRepo()
	r := newTestRouter(sessions)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/conversation/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
