package retriever

import (
	"context"
	"fmt"

	"telecom-assistant/internal/assistant"
	"telecom-assistant/pkg/response"
)

// Retrieve resolves a classification to merged backend data.
//
// Decision order:
//  1. conversational reply present → pass it through, no backend calls;
//  2. no intents → fixed guidance message, no backend calls;
//  3. one backend call per intent, in order, fail-fast on the first fault.
//
// The original message is accepted for future context-aware lookups but
// unused in the base design.
func (r *Retriever) Retrieve(ctx context.Context, cls assistant.Classification, message string) (assistant.RetrievalResult, error) {
	if cls.ConversationalReply != "" {
		return assistant.RetrievalResult{
			Message: cls.ConversationalReply,
			Results: map[string]any{},
			Context: assistant.ContextConversational,
		}, nil
	}

	if !cls.HasIntent() {
		return assistant.RetrievalResult{
			Message: NoIntentMessage,
			Results: map[string]any{},
			Context: assistant.ContextNoIntent,
		}, nil
	}

	merged := make(map[string]any)
	queriesUsed := make([]string, 0, len(cls.Intents))

	for _, intent := range cls.Intents {
		query := queryForIntent(intent)
		queriesUsed = append(queriesUsed, fmt.Sprintf("%s: %s", intent, query))

		data, err := r.callAPI(ctx, query)
		if err != nil {
			r.l.Errorf(ctx, "%s: API error for intent %q: %v", LogPrefixRetrieve, intent, err)
			// Fail-fast: one bad intent invalidates the whole batch. No
			// partial merge of prior successes escapes.
			retErr, ok := err.(*apiError)
			errCtx := assistant.ContextUnexpectedError
			if ok {
				errCtx = retErr.context
			}
			return assistant.RetrievalResult{}, &assistant.RetrievalError{
				Intent:  intent,
				Query:   query,
				Context: errCtx,
				Err:     err,
			}
		}

		mergeResults(merged, data)
	}

	return assistant.RetrievalResult{
		Message:     response.MessageSuccess,
		Results:     merged,
		QueriesUsed: queriesUsed,
		Context:     assistant.ContextSuccess,
	}, nil
}

// mergeResults folds one call's results into the accumulator:
// new key → insert; both list-like → concatenate (accumulator first);
// any non-list conflict → the later intent silently wins.
func mergeResults(acc map[string]any, payload map[string]any) {
	results, ok := payload[resultsKey].(map[string]any)
	if !ok {
		return
	}
	for key, value := range results {
		existing, present := acc[key]
		if !present {
			acc[key] = value
			continue
		}
		existingList, existingIsList := existing.([]any)
		valueList, valueIsList := value.([]any)
		if existingIsList && valueIsList {
			acc[key] = append(existingList, valueList...)
			continue
		}
		acc[key] = value
	}
}
