package handler

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Job browsing for students. Query params (search, filters, paging) are
// forwarded untouched.
func (h *Handler) ListJobs(c *gin.Context) {
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.Jobs(ctx, token, c.Request.URL.Query())
	})
}

func (h *Handler) GetJob(c *gin.Context) {
	id := c.Param("id")
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.Job(ctx, token, id)
	})
}

// Listing management for employers.

func (h *Handler) EmployerJobs(c *gin.Context) {
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.EmployerJobs(ctx, token)
	})
}

func (h *Handler) CreateJob(c *gin.Context) {
	job, ok := rawBody(c)
	if !ok {
		return
	}
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.CreateJob(ctx, token, job)
	})
}

func (h *Handler) UpdateJob(c *gin.Context) {
	job, ok := rawBody(c)
	if !ok {
		return
	}
	id := c.Param("id")
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.UpdateJob(ctx, token, id, job)
	})
}

func (h *Handler) DeleteJob(c *gin.Context) {
	id := c.Param("id")
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return json.RawMessage(`{"success":true}`), h.backend.DeleteJob(ctx, token, id)
	})
}
