package classifier

import (
	"telecom-assistant/internal/assistant"
	pkgLog "telecom-assistant/pkg/log"
	"telecom-assistant/pkg/openai"
)

// Classifier detects user intent with a language-model backend.
type Classifier struct {
	llm openai.IOpenAI
	l   pkgLog.Logger
}

var _ assistant.Classifier = (*Classifier)(nil)

// New creates a new intent Classifier.
func New(l pkgLog.Logger, llm openai.IOpenAI) *Classifier {
	return &Classifier{
		llm: llm,
		l:   l,
	}
}

// Intents returns a copy of the known intent labels.
func (c *Classifier) Intents() []string {
	out := make([]string, len(knownIntents))
	copy(out, knownIntents)
	return out
}

// IsKnownIntent reports whether label is one of the known intents.
func IsKnownIntent(label string) bool {
	for _, intent := range knownIntents {
		if intent == label {
			return true
		}
	}
	return false
}

// Fallback is the classification substituted when the backend is
// unavailable: a fixed conversational reply with an exception context so
// callers can tell it apart from a genuine "no intent recognized".
func Fallback() assistant.Classification {
	return assistant.Classification{
		ConversationalReply: FallbackReply,
		Confidence:          0,
		Context:             assistant.ContextException,
	}
}
