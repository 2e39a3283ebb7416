package http

import (
	"github.com/gin-gonic/gin"

	"telecom-assistant/internal/assistant"
	"telecom-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
	ClassifyIntent(c *gin.Context)
	Intents(c *gin.Context)
	SystemInfo(c *gin.Context)
	Design(c *gin.Context)
	ConversationHistory(c *gin.Context)
	ClearConversationHistory(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         assistant.UseCase
	classifier assistant.Classifier
	designer   assistant.Designer
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, cls assistant.Classifier, designer assistant.Designer) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		classifier: cls,
		designer:   designer,
	}
}
