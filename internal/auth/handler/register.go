package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register forwards the submitted field set untouched; the backend owns
// validation and role assignment. No session is created here, the user
// logs in afterwards.
func (h *Handler) Register(c *gin.Context) {
	fields, err := c.GetRawData()
	if err != nil || !json.Valid(fields) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	result := h.sessions.Register(c.Request.Context(), fields)
	if !result.Success {
		c.JSON(result.Status, gin.H{"success": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
