package retriever

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"telecom-assistant/internal/assistant"
)

// apiError distinguishes transport faults from decode faults so the caller
// can set the right error context.
type apiError struct {
	context assistant.Context
	err     error
}

func (e *apiError) Error() string { return e.err.Error() }

func (e *apiError) Unwrap() error { return e.err }

// callAPI executes one GET against the retrieval backend, sending the query
// as the `message` parameter. Timeout is bounded by the client; there is no
// retry and no cancellation of an in-flight call.
func (r *Retriever) callAPI(ctx context.Context, query string) (map[string]any, error) {
	reqURL := fmt.Sprintf("%s?%s", r.apiURL, url.Values{"message": {query}}.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &apiError{context: assistant.ContextUnexpectedError, err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, &apiError{context: assistant.ContextNetworkError, err: fmt.Errorf("API call failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &apiError{
			context: assistant.ContextNetworkError,
			err:     fmt.Errorf("API call failed: status %d: %s", resp.StatusCode, string(raw)),
		}
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &apiError{context: assistant.ContextUnexpectedError, err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return data, nil
}
