package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"telecom-assistant/internal/assistant"
	"telecom-assistant/internal/assistant/orchestrator"
	"telecom-assistant/pkg/response"
)

// Query godoc
// @Summary     Process a user query through the two-agent pipeline
// @Description Classifies the message intent, retrieves backend data for each detected intent and returns the merged result. Faults are reported inside the envelope, never as HTTP errors.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "User message"
// @Success     200 {object} assistant.Response
// @Router      /api/v1/assistant/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		c.JSON(http.StatusOK, assistant.Response{
			Error:       true,
			Message:     validationMessage(err),
			Results:     map[string]any{},
			QueriesUsed: []string{},
		})
		return
	}

	resp := h.uc.Process(ctx, req.Message)
	h.uc.Record(req.Message, resp)

	c.JSON(http.StatusOK, resp)
}

// ClassifyIntent godoc
// @Summary     Classify a message without retrieving data
// @Description Runs only the intent classification agent. Useful for testing or custom workflows.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Message to classify"
// @Success     200 {object} classifyResp
// @Router      /api/v1/assistant/classify-intent [POST]
func (h *handler) ClassifyIntent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		c.JSON(http.StatusOK, newClassifyErrResp(errors.New(validationMessage(err)), assistant.ContextValidation))
		return
	}

	cls, err := h.classifier.Classify(ctx, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "%s: %v", LogPrefixClassify, err)
		c.JSON(http.StatusOK, newClassifyErrResp(err, assistant.ContextException))
		return
	}

	c.JSON(http.StatusOK, newClassifyResp(cls))
}

// Intents godoc
// @Summary     List supported intents
// @Description Returns the known intent labels with a fixed description line for each.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} intentsResp
// @Router      /api/v1/assistant/intents [GET]
func (h *handler) Intents(c *gin.Context) {
	c.JSON(http.StatusOK, intentsResp{
		Error:              false,
		SupportedIntents:   h.classifier.Intents(),
		IntentDescriptions: intentDescriptions,
		Context:            assistant.ContextSuccess,
	})
}

// SystemInfo godoc
// @Summary     Describe the configured agents
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} systemInfoResp
// @Router      /api/v1/assistant/system-info [GET]
func (h *handler) SystemInfo(c *gin.Context) {
	c.JSON(http.StatusOK, systemInfoResp{
		Error:   false,
		Agents:  h.uc.SystemInfo(),
		Status:  "operational",
		Context: assistant.ContextSuccess,
	})
}

// Design godoc
// @Summary     Retrieve design data for an intent and type
// @Description Forwards intent, type and optional message to the external design service and records the interaction in the conversation log.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body designReq true "Design request"
// @Success     200 {object} assistant.Response
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/design [POST]
func (h *handler) Design(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDesignReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	userMessage := fmt.Sprintf("Design request: %s (intent: %s, type: %s)", req.Message, req.Intent, req.Type)

	out, err := h.designer.GetDesign(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: %v", LogPrefixDesign, err)

		resp := assistant.Response{
			Error:      true,
			Message:    err.Error(),
			Context:    assistant.ContextException,
			Results:    map[string]any{},
			Intents:    []string{req.Intent},
			AgentType:  assistant.AgentTypeDesign,
			DesignType: req.Type,
		}
		var dErr *assistant.DesignError
		if errors.As(err, &dErr) {
			resp.Context = dErr.Context
			resp.RequestPayload = dErr.RequestPayload
		}

		h.uc.Record(userMessage, resp)
		c.JSON(http.StatusOK, resp)
		return
	}

	resp := assistant.Response{
		Error:          false,
		Message:        msgDesignSuccess,
		Results:        out.Results,
		Context:        out.Context,
		Intents:        []string{req.Intent},
		AgentType:      assistant.AgentTypeDesign,
		DesignType:     req.Type,
		RequestPayload: out.RequestPayload,
	}
	h.uc.Record(userMessage, resp)

	c.JSON(http.StatusOK, resp)
}

// ConversationHistory godoc
// @Summary     Get the categorized conversation history
// @Description Returns the last interactions split into intent classifications, data retrievals and design lookups, plus the current memory sizes.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} historyResp
// @Router      /api/v1/assistant/conversation-history [GET]
func (h *handler) ConversationHistory(c *gin.Context) {
	c.JSON(http.StatusOK, newHistoryResp(h.uc.History(), orchestrator.MaxConversations))
}

// ClearConversationHistory godoc
// @Summary     Clear the conversation history
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} clearResp
// @Router      /api/v1/assistant/conversation-history [DELETE]
func (h *handler) ClearConversationHistory(c *gin.Context) {
	h.uc.Clear()

	c.JSON(http.StatusOK, clearResp{
		Error:   false,
		Message: "Conversation history cleared successfully",
		Status:  "success",
		Context: assistant.ContextSuccess,
	})
}

// validationMessage normalizes bind and blank-message faults into the fixed
// user-facing text.
func validationMessage(err error) string {
	if errors.Is(err, assistant.ErrEmptyMessage) {
		return "Message cannot be empty"
	}
	return err.Error()
}
