package assistant

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// ClassificationError reports a backend call or parsing fault during intent
// detection. The pipeline converts it to a conversational fallback rather
// than aborting.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("intent classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// RetrievalError reports a backend fault during one intent's data fetch.
// It is always attributable to a single intent/query pair and aborts the
// whole multi-intent batch.
type RetrievalError struct {
	Intent  string
	Query   string
	Context Context
	Err     error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("data retrieval failed for intent %q (query %q): %v", e.Intent, e.Query, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// DesignError reports a design backend fault, carrying the original request
// payload for diagnosis.
type DesignError struct {
	Context        Context
	RequestPayload map[string]any
	Err            error
}

func (e *DesignError) Error() string {
	return fmt.Sprintf("design API call failed: %v", e.Err)
}

func (e *DesignError) Unwrap() error { return e.Err }
