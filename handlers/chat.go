package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/agent"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the per-turn conversation endpoint.
type ChatHandler struct {
	engine *agent.Engine
}

func NewChatHandler(engine *agent.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// HandleChat runs one turn of the conversation.
//
// On the first turn the client omits sessionId; every response carries the
// sessionId to pass back on the next turn.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("chat: invalid request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	result, err := h.engine.ProcessTurn(c.Request.Context(), agent.TurnInput{
		Message:   req.Message,
		SessionID: req.SessionID,
	})
	if err != nil {
		// Only store failures reach here; agent failures degrade inside the
		// engine. The raw error never goes to the caller.
		logger.Error("chat: turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message",
			"The conversation could not be persisted. Please retry.")
		return
	}

	booking := result.Booking
	c.JSON(http.StatusOK, models.ChatResponse{
		Response:     result.Response,
		SessionID:    result.SessionID,
		AgentUsed:    result.AgentUsed,
		IsComplete:   result.IsComplete,
		BookingInfo:  &booking,
		BookingStage: result.BookingStage,
	})
}
