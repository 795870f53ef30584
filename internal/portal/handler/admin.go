package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/gate"

	"github.com/gin-gonic/gin"
)

// Stats answers the admin dashboard aggregate.
func (h *Handler) Stats(c *gin.Context) {
	sess, ok := gate.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "no autenticado"})
		return
	}
	stats, err := h.backend.Stats(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListUsers(c *gin.Context) {
	h.proxy(c, func(ctx context.Context, token string) (json.RawMessage, error) {
		return h.backend.Users(ctx, token)
	})
}
