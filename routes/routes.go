package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler, conv *handlers.ConversationHandler) {
	api := r.Group("/api")
	{
		api.POST("/chat", chat.HandleChat)
		api.GET("/conversation/:sessionID", conv.GetConversation)
		api.DELETE("/conversation/:sessionID", conv.DeleteConversation)
		api.GET("/sessions", conv.ListSessions)
	}
}

// RegisterFlightRoutes registers the read-only catalog endpoints.
func RegisterFlightRoutes(r *gin.Engine, flights *handlers.FlightHandler) {
	api := r.Group("/api")
	{
		api.GET("/flights/:id", flights.GetFlight)
		api.GET("/flights/:id/availability", flights.GetAvailability)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, chat *handlers.ChatHandler, conv *handlers.ConversationHandler, flights *handlers.FlightHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, chat, conv)
	RegisterFlightRoutes(r, flights)
	RegisterHealthRoute(r)
}
