package retriever_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"telecom-assistant/internal/assistant"
	"telecom-assistant/internal/assistant/retriever"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newBackend returns an httptest server answering per-query with canned
// payloads, plus a counter of calls received.
func newBackend(t *testing.T, payloads map[string]string, failQueries map[string]bool) (*httptest.Server, *int64) {
	t.Helper()
	var calls int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		query := r.URL.Query().Get("message")
		if failQueries[query] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		body, ok := payloads[query]
		if !ok {
			body = `{"results":{}}`
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	return ts, &calls
}

func newRetriever(apiURL string) *retriever.Retriever {
	return retriever.New(&mockLogger{}, retriever.Config{APIURL: apiURL})
}

func TestRetrieve_ConversationalShortCircuit(t *testing.T) {
	ts, calls := newBackend(t, nil, nil)
	defer ts.Close()

	r := newRetriever(ts.URL)
	cls := assistant.Classification{
		ConversationalReply: "hello, how can I help with telecom?",
		Context:             assistant.ContextConversational,
	}

	out, err := r.Retrieve(context.Background(), cls, "hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != cls.ConversationalReply {
		t.Errorf("expected reply passthrough, got %q", out.Message)
	}
	if len(out.Results) != 0 {
		t.Errorf("expected empty results, got %v", out.Results)
	}
	if *calls != 0 {
		t.Errorf("expected zero backend calls, got %d", *calls)
	}
}

func TestRetrieve_NoIntentGuidance(t *testing.T) {
	ts, calls := newBackend(t, nil, nil)
	defer ts.Close()

	r := newRetriever(ts.URL)
	out, err := r.Retrieve(context.Background(), assistant.Classification{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != retriever.NoIntentMessage {
		t.Errorf("expected guidance message, got %q", out.Message)
	}
	if out.Context != assistant.ContextNoIntent {
		t.Errorf("expected no_intent context, got %s", out.Context)
	}
	if *calls != 0 {
		t.Errorf("expected zero backend calls, got %d", *calls)
	}
}

func TestRetrieve_SingleIntent(t *testing.T) {
	ts, calls := newBackend(t, map[string]string{
		"usage data": `{"results":{"usage":[{"month":"May","gb":12}]}}`,
	}, nil)
	defer ts.Close()

	r := newRetriever(ts.URL)
	cls := assistant.Classification{Intents: []string{"usage"}, Confidence: 1.0}

	out, err := r.Retrieve(context.Background(), cls, "show my data usage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Success" {
		t.Errorf("expected Success, got %q", out.Message)
	}
	if !reflect.DeepEqual(out.QueriesUsed, []string{"usage: usage data"}) {
		t.Errorf("unexpected audit strings: %v", out.QueriesUsed)
	}
	if _, ok := out.Results["usage"]; !ok {
		t.Errorf("expected usage key in results, got %v", out.Results)
	}
	if *calls != 1 {
		t.Errorf("expected one backend call, got %d", *calls)
	}
}

func TestRetrieve_MergeLaws(t *testing.T) {
	t.Run("List Concatenation Preserves Order", func(t *testing.T) {
		ts, _ := newBackend(t, map[string]string{
			"event offers":  `{"results":{"items":["concert","festival"]}}`,
			"sports events": `{"results":{"items":["derby"]}}`,
		}, nil)
		defer ts.Close()

		r := newRetriever(ts.URL)
		cls := assistant.Classification{Intents: []string{"events", "sports_events"}, Confidence: 1.0}

		out, err := r.Retrieve(context.Background(), cls, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, ok := out.Results["items"].([]any)
		if !ok {
			t.Fatalf("expected list under items, got %T", out.Results["items"])
		}
		want := []any{"concert", "festival", "derby"}
		if !reflect.DeepEqual(items, want) {
			t.Errorf("expected %v, got %v", want, items)
		}
	})

	t.Run("Scalar Last Write Wins", func(t *testing.T) {
		ts, _ := newBackend(t, map[string]string{
			"usage data":          `{"results":{"customer_tier":"silver","usage":[1]}}`,
			"billing information": `{"results":{"customer_tier":"gold","billing":[2]}}`,
		}, nil)
		defer ts.Close()

		r := newRetriever(ts.URL)
		cls := assistant.Classification{Intents: []string{"usage", "billing"}, Confidence: 1.0}

		out, err := r.Retrieve(context.Background(), cls, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Results["customer_tier"] != "gold" {
			t.Errorf("expected later intent to win, got %v", out.Results["customer_tier"])
		}
	})

	t.Run("List Scalar Mismatch Overwrites", func(t *testing.T) {
		ts, _ := newBackend(t, map[string]string{
			"usage data":          `{"results":{"data":[1,2]}}`,
			"billing information": `{"results":{"data":"flat"}}`,
		}, nil)
		defer ts.Close()

		r := newRetriever(ts.URL)
		cls := assistant.Classification{Intents: []string{"usage", "billing"}, Confidence: 1.0}

		out, err := r.Retrieve(context.Background(), cls, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Results["data"] != "flat" {
			t.Errorf("expected silent overwrite on shape mismatch, got %v", out.Results["data"])
		}
	})

	t.Run("Missing Results Key Ignored", func(t *testing.T) {
		ts, _ := newBackend(t, map[string]string{
			"usage data": `{"status":"ok"}`,
		}, nil)
		defer ts.Close()

		r := newRetriever(ts.URL)
		cls := assistant.Classification{Intents: []string{"usage"}, Confidence: 1.0}

		out, err := r.Retrieve(context.Background(), cls, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Results) != 0 {
			t.Errorf("expected empty merge, got %v", out.Results)
		}
	})
}

func TestRetrieve_FailFast(t *testing.T) {
	ts, calls := newBackend(t, map[string]string{
		"usage data": `{"results":{"usage":[1,2,3]}}`,
	}, map[string]bool{
		"billing information": true,
	})
	defer ts.Close()

	r := newRetriever(ts.URL)
	cls := assistant.Classification{Intents: []string{"usage", "billing", "plans"}, Confidence: 1.0}

	out, err := r.Retrieve(context.Background(), cls, "")
	if err == nil {
		t.Fatalf("expected retrieval error")
	}

	var retErr *assistant.RetrievalError
	if !errors.As(err, &retErr) {
		t.Fatalf("expected *RetrievalError, got %T", err)
	}
	if retErr.Intent != "billing" {
		t.Errorf("expected failing intent billing, got %q", retErr.Intent)
	}
	if retErr.Query != "billing information" {
		t.Errorf("expected failing query, got %q", retErr.Query)
	}
	if retErr.Context != assistant.ContextNetworkError {
		t.Errorf("expected network_error context, got %s", retErr.Context)
	}

	// No partial merge escapes, and the third intent is never attempted.
	if len(out.Results) != 0 {
		t.Errorf("expected no partial results, got %v", out.Results)
	}
	if *calls != 2 {
		t.Errorf("expected batch abort after 2 calls, got %d", *calls)
	}
}

func TestRetrieve_UnknownIntentFallsBack(t *testing.T) {
	ts, _ := newBackend(t, map[string]string{
		"available plans": `{"results":{"plans":["basic"]}}`,
	}, nil)
	defer ts.Close()

	r := newRetriever(ts.URL)
	cls := assistant.Classification{Intents: []string{"mystery"}, Confidence: 1.0}

	out, err := r.Retrieve(context.Background(), cls, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out.QueriesUsed, []string{"mystery: available plans"}) {
		t.Errorf("expected fallback query audit, got %v", out.QueriesUsed)
	}
}

func TestRetrieve_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{broken`))
	}))
	defer ts.Close()

	r := newRetriever(ts.URL)
	cls := assistant.Classification{Intents: []string{"usage"}, Confidence: 1.0}

	_, err := r.Retrieve(context.Background(), cls, "")
	var retErr *assistant.RetrievalError
	if !errors.As(err, &retErr) {
		t.Fatalf("expected *RetrievalError, got %v", err)
	}
	if retErr.Context != assistant.ContextUnexpectedError {
		t.Errorf("expected unexpected_error context for decode faults, got %s", retErr.Context)
	}
}

func TestQueryForIntent(t *testing.T) {
	r := newRetriever("http://data.example")

	info := r.QueryForIntent("usage")
	if info.Query != "usage data" {
		t.Errorf("expected usage data, got %q", info.Query)
	}
	if info.APIURL != "http://data.example" {
		t.Errorf("expected API URL echoed, got %q", info.APIURL)
	}

	fallback := r.QueryForIntent("nonsense")
	if fallback.Query != retriever.FallbackQuery {
		t.Errorf("expected fallback query, got %q", fallback.Query)
	}
}
