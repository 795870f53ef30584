package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusRequest struct {
	Status string `json:"status"`
}

// Apply submits a student application ({jobId, coverLetter}).
func (h *Handler) Apply(c *gin.Context) {
	application, ok := rawBody(c)
	if !ok {
		return
	}
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.Apply(ctx, token, application)
	})
}

func (h *Handler) StudentApplications(c *gin.Context) {
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.StudentApplications(ctx, token)
	})
}

func (h *Handler) JobApplications(c *gin.Context) {
	jobID := c.Param("jobId")
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.JobApplications(ctx, token, jobID)
	})
}

// UpdateApplicationStatus lets an employer move an application through
// the review pipeline.
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	id := c.Param("id")
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.UpdateApplicationStatus(ctx, token, id, req.Status)
	})
}
