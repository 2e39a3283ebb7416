package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"telecom-assistant/internal/assistant"
	"telecom-assistant/internal/assistant/classifier"
	"telecom-assistant/internal/assistant/orchestrator"
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

// mockClassifier returns a canned classification or error, or panics.
type mockClassifier struct {
	cls     assistant.Classification
	err     error
	doPanic bool
}

func (m *mockClassifier) Classify(ctx context.Context, message string) (assistant.Classification, error) {
	if m.doPanic {
		panic("classifier exploded")
	}
	return m.cls, m.err
}

func (m *mockClassifier) Intents() []string {
	return []string{"usage", "billing"}
}

// mockRetriever returns a canned result or error and records the
// classification it was handed.
type mockRetriever struct {
	result assistant.RetrievalResult
	err    error
	calls  int
	gotCls assistant.Classification
}

func (m *mockRetriever) Retrieve(ctx context.Context, cls assistant.Classification, message string) (assistant.RetrievalResult, error) {
	m.calls++
	m.gotCls = cls
	if m.err != nil {
		return assistant.RetrievalResult{}, m.err
	}
	return m.result, nil
}

func (m *mockRetriever) QueryForIntent(intent string) assistant.QueryInfo {
	return assistant.QueryInfo{Intent: intent, Query: "usage data", APIURL: "http://data.test"}
}

func newOrchestrator(cls *mockClassifier, ret *mockRetriever) *orchestrator.Orchestrator {
	return orchestrator.New(&mockLogger{}, cls, ret, "http://data.test")
}

func TestProcess_Success(t *testing.T) {
	cls := &mockClassifier{
		cls: assistant.Classification{
			Intents:    []string{"usage"},
			Confidence: 1.0,
			Context:    assistant.ContextIntentDetected,
		},
	}
	ret := &mockRetriever{
		result: assistant.RetrievalResult{
			Message:     "Success",
			Results:     map[string]any{"plans": []any{"basic"}},
			QueriesUsed: []string{"usage: usage data"},
			Context:     assistant.ContextSuccess,
		},
	}
	o := newOrchestrator(cls, ret)

	resp := o.Process(context.Background(), "how much data do I have left")

	if resp.Error {
		t.Fatalf("expected no error envelope, got %+v", resp)
	}
	if resp.Message != "Success" {
		t.Errorf("expected message 'Success', got %q", resp.Message)
	}
	if resp.Context != assistant.ContextSuccess {
		t.Errorf("expected context %q, got %q", assistant.ContextSuccess, resp.Context)
	}
	if len(resp.Intents) != 1 || resp.Intents[0] != "usage" {
		t.Errorf("expected intents [usage], got %v", resp.Intents)
	}
	if resp.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", resp.Confidence)
	}
	if len(resp.QueriesUsed) != 1 || resp.QueriesUsed[0] != "usage: usage data" {
		t.Errorf("unexpected queries used: %v", resp.QueriesUsed)
	}
}

func TestProcess_RetrievalFailureEnvelope(t *testing.T) {
	cls := &mockClassifier{
		cls: assistant.Classification{
			Intents:    []string{"usage", "billing", "plans"},
			Confidence: 1.0,
			Context:    assistant.ContextIntentDetected,
		},
	}
	ret := &mockRetriever{
		err: &assistant.RetrievalError{
			Intent:  "billing",
			Query:   "billing information",
			Context: assistant.ContextNetworkError,
			Err:     errors.New("connection refused"),
		},
	}
	o := newOrchestrator(cls, ret)

	resp := o.Process(context.Background(), "usage, billing and plans please")

	if !resp.Error {
		t.Fatal("expected an error envelope")
	}
	if resp.FailedIntent != "billing" {
		t.Errorf("expected failed intent 'billing', got %q", resp.FailedIntent)
	}
	if resp.FailedQuery != "billing information" {
		t.Errorf("expected failed query 'billing information', got %q", resp.FailedQuery)
	}
	if resp.Context != assistant.ContextNetworkError {
		t.Errorf("expected context %q, got %q", assistant.ContextNetworkError, resp.Context)
	}
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Errorf("expected empty non-nil results, got %v", resp.Results)
	}
	if len(resp.QueriesUsed) != 0 {
		t.Errorf("expected no queries used on failure, got %v", resp.QueriesUsed)
	}
}

func TestProcess_ClassifierFailureStillRetrieves(t *testing.T) {
	cls := &mockClassifier{err: errors.New("backend timeout")}
	ret := &mockRetriever{
		result: assistant.RetrievalResult{
			Message: classifier.FallbackReply,
			Results: map[string]any{},
			Context: assistant.ContextException,
		},
	}
	o := newOrchestrator(cls, ret)

	resp := o.Process(context.Background(), "hello")

	if ret.calls != 1 {
		t.Fatalf("expected retriever to be called once despite classifier failure, got %d calls", ret.calls)
	}
	if ret.gotCls.ConversationalReply != classifier.FallbackReply {
		t.Errorf("expected retriever to receive the fallback classification, got %+v", ret.gotCls)
	}
	if ret.gotCls.Context != assistant.ContextException {
		t.Errorf("expected fallback context %q, got %q", assistant.ContextException, ret.gotCls.Context)
	}
	if resp.Error {
		t.Errorf("fallback path should not produce an error envelope, got %+v", resp)
	}
	if resp.Message != classifier.FallbackReply {
		t.Errorf("expected fallback reply, got %q", resp.Message)
	}
}

func TestProcess_PanicRecovered(t *testing.T) {
	cls := &mockClassifier{doPanic: true}
	ret := &mockRetriever{}
	o := newOrchestrator(cls, ret)

	resp := o.Process(context.Background(), "boom")

	if !resp.Error {
		t.Fatal("expected an error envelope after panic")
	}
	if resp.Context != assistant.ContextException {
		t.Errorf("expected context %q, got %q", assistant.ContextException, resp.Context)
	}
	if !strings.HasPrefix(resp.Message, "System error:") {
		t.Errorf("expected system error message, got %q", resp.Message)
	}
	if resp.Results == nil {
		t.Error("expected non-nil results map in error envelope")
	}
}

func TestProcess_NilResultsNormalized(t *testing.T) {
	cls := &mockClassifier{
		cls: assistant.Classification{ConversationalReply: "Hello!", Context: assistant.ContextConversational},
	}
	ret := &mockRetriever{
		result: assistant.RetrievalResult{
			Message: "Hello!",
			Results: nil,
			Context: assistant.ContextConversational,
		},
	}
	o := newOrchestrator(cls, ret)

	resp := o.Process(context.Background(), "hi there")

	if resp.Results == nil {
		t.Fatal("expected nil results to be normalized to an empty map")
	}
	if len(resp.Results) != 0 {
		t.Errorf("expected empty results, got %v", resp.Results)
	}
}

func TestSystemInfo(t *testing.T) {
	o := newOrchestrator(&mockClassifier{}, &mockRetriever{})

	info := o.SystemInfo()

	if info.APIURL != "http://data.test" {
		t.Errorf("expected api url to be echoed, got %q", info.APIURL)
	}
	if len(info.AvailableIntents) == 0 {
		t.Error("expected available intents from the classifier")
	}
}
