package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"telecom-assistant/internal/assistant"
	"telecom-assistant/internal/assistant/classifier"
)

// Process runs the two-agent pipeline: classify, then retrieve. It never
// returns an error; every fault is normalized into the Response envelope,
// and a panic in either agent is recovered into a system-error envelope so
// nothing escapes to the transport layer.
func (o *Orchestrator) Process(ctx context.Context, message string) (resp assistant.Response) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: recovered panic: %v", LogPrefixProcess, r)
			resp = assistant.Response{
				Error:   true,
				Message: fmt.Sprintf(ErrMsgSystemError, r),
				Context: assistant.ContextException,
				Results: map[string]any{},
			}
		}
	}()

	cls, err := o.classifier.Classify(ctx, message)
	if err != nil {
		// Classification faults degrade to a conversational fallback; the
		// retriever is still invoked so the pipeline always produces a
		// textual reply through the same path.
		o.l.Errorf(ctx, "%s: classification failed, using fallback: %v", LogPrefixProcess, err)
		cls = classifier.Fallback()
	}

	result, err := o.retriever.Retrieve(ctx, cls, message)
	if err != nil {
		var retErr *assistant.RetrievalError
		if errors.As(err, &retErr) {
			o.l.Errorf(ctx, "%s: %v", LogPrefixProcess, retErr)
			errCtx := retErr.Context
			if errCtx == "" {
				errCtx = assistant.ContextAPICallFailed
			}
			return assistant.Response{
				Error:        true,
				Message:      retErr.Error(),
				Context:      errCtx,
				Results:      map[string]any{},
				QueriesUsed:  []string{},
				FailedIntent: retErr.Intent,
				FailedQuery:  retErr.Query,
			}
		}
		o.l.Errorf(ctx, "%s: retrieval failed: %v", LogPrefixProcess, err)
		return assistant.Response{
			Error:   true,
			Message: fmt.Sprintf(ErrMsgSystemError, err),
			Context: assistant.ContextException,
			Results: map[string]any{},
		}
	}

	results := result.Results
	if results == nil {
		results = map[string]any{}
	}

	return assistant.Response{
		Error:         false,
		Message:       result.Message,
		Results:       results,
		QueriesUsed:   result.QueriesUsed,
		Context:       result.Context,
		Intents:       cls.Intents,
		Confidence:    cls.Confidence,
		Inappropriate: cls.Inappropriate,
	}
}
