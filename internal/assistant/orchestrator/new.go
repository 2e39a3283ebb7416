package orchestrator

import (
	"telecom-assistant/internal/assistant"
	pkgLog "telecom-assistant/pkg/log"
)

// Orchestrator sequences the intent classifier and the data retriever, and
// owns the bounded conversation log shared with the design facade.
type Orchestrator struct {
	classifier assistant.Classifier
	retriever  assistant.Retriever
	l          pkgLog.Logger
	log        *ConversationLog
	apiURL     string
}

var _ assistant.UseCase = (*Orchestrator)(nil)

// New creates a new pipeline Orchestrator. apiURL is only echoed through
// SystemInfo; the retriever owns the actual endpoint.
func New(l pkgLog.Logger, cls assistant.Classifier, ret assistant.Retriever, apiURL string) *Orchestrator {
	return &Orchestrator{
		classifier: cls,
		retriever:  ret,
		l:          l,
		log:        NewConversationLog(MaxConversations),
		apiURL:     apiURL,
	}
}

// SystemInfo describes the configured agents for introspection endpoints.
func (o *Orchestrator) SystemInfo() assistant.SystemInfo {
	return assistant.SystemInfo{
		IntentAgent:      "intent classification agent (OpenAI chat completions)",
		DataAgent:        "data retrieval agent (telecom data API)",
		APIURL:           o.apiURL,
		AvailableIntents: o.classifier.Intents(),
	}
}
