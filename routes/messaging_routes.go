package routes

import (
	shared "renegaderace/internal/handlers/shared"
	"renegaderace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupMessagingRoutes sets up routes for conversations and messages
func SetupMessagingRoutes(r *gin.RouterGroup, messagingHandler *shared.MessagingHandler, jwtSecret string) {
	conversations := r.Group("/conversations")
	conversations.Use(middleware.AuthRequired(jwtSecret))
	{
		conversations.GET("", messagingHandler.ListConversations)
		conversations.POST("", messagingHandler.CreateConversation)
		conversations.PUT("/:id/read", messagingHandler.MarkConversationRead)
		conversations.GET("/:id/messages", messagingHandler.ListMessages)
		conversations.POST("/:id/messages", messagingHandler.SendMessage)
	}
}
