package classifier

import (
	"context"
	"fmt"
	"strings"

	"telecom-assistant/internal/assistant"
	"telecom-assistant/pkg/openai"
)

// Classify maps a free-text message to a Classification. Single attempt:
// backend faults surface as *assistant.ClassificationError and are never
// retried here.
func (c *Classifier) Classify(ctx context.Context, message string) (assistant.Classification, error) {
	resp, err := c.llm.CreateChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		c.l.Errorf(ctx, "%s: LLM call failed: %v", LogPrefixClassify, err)
		return assistant.Classification{}, &assistant.ClassificationError{Err: err}
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("empty LLM response")
		c.l.Errorf(ctx, "%s: %v", LogPrefixClassify, err)
		return assistant.Classification{}, &assistant.ClassificationError{Err: err}
	}

	responseText := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.l.Debugf(ctx, "%s: query %q -> LLM response %q", LogPrefixClassify, message, responseText)

	responseLower := strings.ToLower(responseText)

	// Exact label match: single clear intent.
	if IsKnownIntent(responseLower) {
		return assistant.Classification{
			Intents:    []string{responseLower},
			Confidence: 1.0,
			Context:    assistant.ContextIntentDetected,
		}, nil
	}

	// Label plus a politeness remark: intent recognized despite offensive
	// language in the source message.
	if intent, ok := detectInappropriate(responseLower); ok {
		return assistant.Classification{
			Intents:       []string{intent},
			Inappropriate: true,
			Confidence:    1.0,
			Context:       assistant.ContextInappropriateLanguage,
		}, nil
	}

	// Anything else is the backend talking to the user directly.
	return assistant.Classification{
		ConversationalReply: responseText,
		Confidence:          0,
		Context:             assistant.ContextConversational,
	}, nil
}

// detectInappropriate is the heuristic for "intent plus boundary-setting"
// backend outputs: a known label appearing anywhere in the text together
// with a "polite"/"language" cue word. Kept as one pure function so it can
// be swapped for a structured output schema without touching the pipeline.
//
// Known fragility: a label showing up in an unrelated sentence alongside
// either cue word false-triggers.
func detectInappropriate(responseLower string) (string, bool) {
	if !strings.Contains(responseLower, "polite") && !strings.Contains(responseLower, "language") {
		return "", false
	}
	for _, intent := range knownIntents {
		if strings.Contains(responseLower, intent) {
			return intent, true
		}
	}
	return "", false
}
