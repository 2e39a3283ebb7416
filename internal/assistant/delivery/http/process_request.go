package http

import (
	"github.com/gin-gonic/gin"
)

// processQueryReq binds and validates the pipeline query request body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processClassifyReq binds and validates the classify-only request body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDesignReq binds and validates the design lookup request body.
func (h *handler) processDesignReq(c *gin.Context) (designReq, error) {
	var req designReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
