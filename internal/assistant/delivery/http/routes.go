package http

import (
	"github.com/gin-gonic/gin"

	"telecom-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The whole
// group is rate limited per client; CORS is applied server-wide.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant", mw.RateLimit())
	{
		assistant.POST("/query", h.Query)
		assistant.POST("/classify-intent", h.ClassifyIntent)
		assistant.GET("/intents", h.Intents)
		assistant.GET("/system-info", h.SystemInfo)
		assistant.POST("/design", h.Design)
		assistant.GET("/conversation-history", h.ConversationHistory)
		assistant.DELETE("/conversation-history", h.ClearConversationHistory)
	}
}
