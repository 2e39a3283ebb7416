package orchestrator

// MaxConversations bounds the interaction log: inserting past capacity
// evicts the oldest entry.
const MaxConversations = 5

// Log prefixes
const (
	LogPrefixProcess = "internal.assistant.orchestrator.Process"
)

// Error messages
const (
	ErrMsgSystemError = "System error: %v"
)
