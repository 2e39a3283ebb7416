package design

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"telecom-assistant/internal/assistant"
)

// GetDesign POSTs the caller-provided intent, type and optional message to
// the design backend and returns its JSON body untouched. Intent and Type
// are forwarded as given; Message is trimmed and omitted when blank.
//
// Faults surface as *assistant.DesignError carrying the outgoing payload so
// callers can echo it back to the client.
func (d *Design) GetDesign(ctx context.Context, input assistant.DesignInput) (assistant.DesignOutput, error) {
	payload := map[string]any{
		"intent": input.Intent,
		"type":   input.Type,
	}
	if msg := strings.TrimSpace(input.Message); msg != "" {
		payload["message"] = msg
	}

	d.l.Debugf(ctx, "%s: calling design API with payload: %v", LogPrefixGetDesign, payload)

	body, err := json.Marshal(payload)
	if err != nil {
		return assistant.DesignOutput{}, &assistant.DesignError{
			Context:        assistant.ContextUnexpectedError,
			RequestPayload: payload,
			Err:            fmt.Errorf("failed to encode payload: %w", err),
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.apiURL, bytes.NewReader(body))
	if err != nil {
		return assistant.DesignOutput{}, &assistant.DesignError{
			Context:        assistant.ContextUnexpectedError,
			RequestPayload: payload,
			Err:            fmt.Errorf("failed to create request: %w", err),
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		d.l.Errorf(ctx, "%s: API call failed: %v", LogPrefixGetDesign, err)
		return assistant.DesignOutput{}, &assistant.DesignError{
			Context:        assistant.ContextNetworkError,
			RequestPayload: payload,
			Err:            err,
		}
	}
	defer resp.Body.Close()

	d.l.Infof(ctx, "%s: API response status: %d", LogPrefixGetDesign, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return assistant.DesignOutput{}, &assistant.DesignError{
			Context:        assistant.ContextNetworkError,
			RequestPayload: payload,
			Err:            fmt.Errorf("status %d: %s", resp.StatusCode, string(raw)),
		}
	}

	var results map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return assistant.DesignOutput{}, &assistant.DesignError{
			Context:        assistant.ContextUnexpectedError,
			RequestPayload: payload,
			Err:            fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return assistant.DesignOutput{
		Results:        results,
		RequestPayload: payload,
		Context:        assistant.ContextSuccess,
	}, nil
}
