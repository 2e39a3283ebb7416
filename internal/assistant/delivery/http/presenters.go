package http

import (
	"strings"

	"telecom-assistant/internal/assistant"
)

// --- Request DTOs ---

// Blank messages are reported through the response envelope rather than a
// binding error, so `message` carries no binding tag.
type queryReq struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func (r queryReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return assistant.ErrEmptyMessage
	}
	return nil
}

type classifyReq struct {
	Message string `json:"message"`
}

func (r classifyReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return assistant.ErrEmptyMessage
	}
	return nil
}

type designReq struct {
	Intent  string `json:"intent"  binding:"required"`
	Type    string `json:"type"    binding:"required"`
	Message string `json:"message"`
}

func (r designReq) toInput() assistant.DesignInput {
	return assistant.DesignInput{
		Intent:  r.Intent,
		Type:    r.Type,
		Message: r.Message,
	}
}

// --- Response DTOs ---

// The query and design endpoints serialize the assistant.Response envelope
// as-is; the remaining endpoints use the shapes below.

type classifyResp struct {
	Error                  bool              `json:"error"`
	ErrorMessage           string            `json:"error_message,omitempty"`
	Intents                []string          `json:"intent"`
	Inappropriate          bool              `json:"inappropriate"`
	ConversationalResponse string            `json:"conversational_response,omitempty"`
	Confidence             float64           `json:"confidence"`
	Context                assistant.Context `json:"context,omitempty"`
}

func newClassifyResp(cls assistant.Classification) classifyResp {
	return classifyResp{
		Error:                  false,
		Intents:                cls.Intents,
		Inappropriate:          cls.Inappropriate,
		ConversationalResponse: cls.ConversationalReply,
		Confidence:             cls.Confidence,
		Context:                cls.Context,
	}
}

func newClassifyErrResp(err error, errCtx assistant.Context) classifyResp {
	return classifyResp{
		Error:        true,
		ErrorMessage: err.Error(),
		Context:      errCtx,
	}
}

type intentsResp struct {
	Error              bool              `json:"error"`
	SupportedIntents   []string          `json:"supported_intents"`
	IntentDescriptions []string          `json:"intent_descriptions"`
	Context            assistant.Context `json:"context"`
}

type systemInfoResp struct {
	Error   bool                 `json:"error"`
	Agents  assistant.SystemInfo `json:"agents"`
	Status  string               `json:"status"`
	Context assistant.Context    `json:"context"`
}

type memoryStatus struct {
	IntentMemorySize int    `json:"intent_memory_size"`
	DataMemorySize   int    `json:"data_memory_size"`
	DesignMemorySize int    `json:"design_memory_size"`
	MaxSize          int    `json:"max_size"`
	Description      string `json:"description"`
}

type historyResp struct {
	Error               bool              `json:"error"`
	ConversationHistory assistant.History `json:"conversation_history"`
	MemoryStatus        memoryStatus      `json:"memory_status"`
	Context             assistant.Context `json:"context"`
}

func newHistoryResp(h assistant.History, maxSize int) historyResp {
	return historyResp{
		ConversationHistory: h,
		MemoryStatus: memoryStatus{
			IntentMemorySize: len(h.IntentClassifications),
			DataMemorySize:   len(h.APICalls),
			DesignMemorySize: len(h.DesignCalls),
			MaxSize:          maxSize,
			Description:      memoryDescription,
		},
		Context: assistant.ContextSuccess,
	}
}

type clearResp struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Context assistant.Context `json:"context"`
}
