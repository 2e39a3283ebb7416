package assistant

import "context"

// Classifier maps a free-text message to known intent labels or a
// conversational fallback.
type Classifier interface {
	// Classify returns the classification for a message. On backend failure
	// it returns a *ClassificationError; callers that must still produce a
	// reply substitute the fixed fallback classification.
	Classify(ctx context.Context, message string) (Classification, error)

	// Intents returns the fixed set of known intent labels.
	Intents() []string
}

// Retriever resolves classified intents to backend data and merges the
// per-intent result sets.
type Retriever interface {
	// Retrieve executes the decision order of the data retrieval agent.
	// Backend faults surface as *RetrievalError and abort the batch.
	Retrieve(ctx context.Context, cls Classification, message string) (RetrievalResult, error)

	// QueryForIntent exposes the static intent→query mapping.
	QueryForIntent(intent string) QueryInfo
}

// Designer is the single-call passthrough to the design backend.
type Designer interface {
	GetDesign(ctx context.Context, input DesignInput) (DesignOutput, error)
}

// UseCase is the orchestrator surface exposed to the transport layer.
type UseCase interface {
	// Process runs the full classify→retrieve pipeline. It never returns an
	// error: all faults are normalized into the Response envelope.
	Process(ctx context.Context, message string) Response

	// Record appends a completed interaction to the bounded log.
	Record(userMessage string, resp Response)

	// History returns the categorized view over the log.
	History() History

	// Clear empties the log unconditionally.
	Clear()

	// SystemInfo describes the configured agents.
	SystemInfo() SystemInfo
}
