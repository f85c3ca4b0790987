package handlers

import (
	"net/http"

	sessionRepo "voyago/database/repository/session"
	"voyago/models"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationHandler exposes session replay, listing and deletion. These
// are pass-throughs over the session store, not part of the turn pipeline.
type ConversationHandler struct {
	sessions sessionRepo.SessionRepository
}

func NewConversationHandler(sessions sessionRepo.SessionRepository) *ConversationHandler {
	return &ConversationHandler{sessions: sessions}
}

// GetConversation returns the full message history for a session.
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, err := h.sessions.Load(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("conversation: load failed", zap.String("session_id", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load conversation", "")
		return
	}
	if session == nil {
		utils.JSONError(c, http.StatusNotFound, "Session not found", "")
		return
	}

	c.JSON(http.StatusOK, models.ConversationHistory{
		SessionID: session.SessionID,
		Messages:  session.Messages,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
}

// DeleteConversation removes a session and all its messages.
func (h *ConversationHandler) DeleteConversation(c *gin.Context) {
	sessionID := c.Param("sessionID")

	deleted, err := h.sessions.Delete(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("conversation: delete failed", zap.String("session_id", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete conversation", "")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Session not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted successfully"})
}

// ListSessions returns summaries of all stored sessions.
func (h *ConversationHandler) ListSessions(c *gin.Context) {
	summaries, err := h.sessions.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("conversation: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list sessions", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": summaries, "total": len(summaries)})
}
