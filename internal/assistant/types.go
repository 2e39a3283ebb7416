package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Context tags where in the pipeline a response was produced. It lets
// callers tell "backend down" apart from "no intent recognized" even though
// both surface as a conversational reply.
type Context string

const (
	ContextIntentDetected        Context = "intent_detected"
	ContextInappropriateLanguage Context = "inappropriate_language"
	ContextConversational        Context = "conversational_response"
	ContextNoIntent              Context = "no_intent"
	ContextSuccess               Context = "success"
	ContextAPICallFailed         Context = "api_call_failed"
	ContextNetworkError          Context = "network_error"
	ContextUnexpectedError       Context = "unexpected_error"
	ContextException             Context = "exception"
	ContextValidation            Context = "validation"
)

// Classification is the Intent Classifier's verdict on a user message.
//
// Invariants:
//   - ConversationalReply and a non-empty Intents list are mutually exclusive.
//   - Confidence is 1.0 iff Intents is non-empty, 0 otherwise.
type Classification struct {
	Intents             []string `json:"intent,omitempty"`
	Inappropriate       bool     `json:"inappropriate"`
	ConversationalReply string   `json:"conversational_response,omitempty"`
	Confidence          float64  `json:"confidence"`
	Context             Context  `json:"context,omitempty"`
}

// HasIntent reports whether at least one intent was recognized.
func (c Classification) HasIntent() bool {
	return len(c.Intents) > 0
}

// RetrievalResult is the Data Retriever's merged output across intents.
type RetrievalResult struct {
	Message     string         `json:"message"`
	Results     map[string]any `json:"results"`
	QueriesUsed []string       `json:"queries_used,omitempty"`
	Context     Context        `json:"context,omitempty"`
}

// QueryInfo describes how a single intent maps onto the retrieval backend.
type QueryInfo struct {
	Intent string `json:"intent"`
	Query  string `json:"query"`
	APIURL string `json:"api_url"`
}

// Response is the uniform envelope the orchestrator hands to its transport
// wrapper. Every pipeline and design invocation produces exactly one of
// these; the Error flag and Message are always set, Results is never nil
// once normalized.
type Response struct {
	Error       bool           `json:"error"`
	Message     string         `json:"message"`
	Results     map[string]any `json:"results"`
	QueriesUsed []string       `json:"queries_used,omitempty"`
	Context     Context        `json:"context,omitempty"`

	// Classification fields, carried for history categorization.
	Intents       []string `json:"intent,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
	Inappropriate bool     `json:"inappropriate,omitempty"`

	// Set only on retrieval failures: the intent/query pair that aborted
	// the batch.
	FailedIntent string `json:"failed_intent,omitempty"`
	FailedQuery  string `json:"failed_query,omitempty"`

	// Design lookup marker fields.
	AgentType      string         `json:"agent_type,omitempty"`
	DesignType     string         `json:"design_type,omitempty"`
	RequestPayload map[string]any `json:"request_payload,omitempty"`
}

// IsDesign reports whether this response came from the design facade.
func (r Response) IsDesign() bool {
	return r.AgentType == AgentTypeDesign
}

// AgentTypeDesign marks responses produced by the Design Lookup facade.
const AgentTypeDesign = "design"

// ConversationEntry is one immutable record in the bounded interaction log.
type ConversationEntry struct {
	ID          uuid.UUID `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"user_message"`
	Response    Response  `json:"response"`
}

// --- History views ---

// IntentRecord is the history projection of a classified interaction.
type IntentRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	UserMessage   string    `json:"user_message"`
	Intents       []string  `json:"intent"`
	Confidence    float64   `json:"confidence"`
	Inappropriate bool      `json:"inappropriate"`
}

// APICallRecord is the history projection of a data retrieval interaction.
type APICallRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	UserMessage  string    `json:"user_message"`
	QueriesUsed  []string  `json:"queries_used"`
	ResultsCount int       `json:"results_count"`
}

// DesignCallRecord is the history projection of a design lookup.
type DesignCallRecord struct {
	Timestamp        time.Time `json:"timestamp"`
	UserMessage      string    `json:"user_message"`
	Intent           string    `json:"intent"`
	DesignType       string    `json:"design_type"`
	Error            bool      `json:"error"`
	ResultsAvailable bool      `json:"results_available"`
}

// History is the categorized view over the conversation log. A single
// entry may appear in more than one category.
type History struct {
	IntentClassifications []IntentRecord     `json:"intent_classifications"`
	APICalls              []APICallRecord    `json:"api_calls"`
	DesignCalls           []DesignCallRecord `json:"design_calls"`
}

// SystemInfo describes the running agent configuration.
type SystemInfo struct {
	IntentAgent      string   `json:"intent_agent"`
	DataAgent        string   `json:"data_agent"`
	APIURL           string   `json:"api_url"`
	AvailableIntents []string `json:"available_intents"`
}

// --- Design lookup I/O ---

// DesignInput is the caller-provided request for a design lookup.
type DesignInput struct {
	Intent  string
	Type    string
	Message string
}

// DesignOutput is a successful design lookup.
type DesignOutput struct {
	Results        map[string]any
	RequestPayload map[string]any
	Context        Context
}
