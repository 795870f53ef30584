package handler

import (
	"net/http"
	"time"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	prior, _ := c.Cookie(session.CookieName)
	result := h.sessions.Login(c.Request.Context(), prior, req.Email, req.Password)
	if !result.Success {
		c.JSON(result.Status, gin.H{"success": false, "message": result.Message})
		return
	}

	session.SetCookie(
		c.Writer,
		result.SessionID,
		time.Now().Add(h.sessionTTL),
		h.cookieOpts,
	)

	c.JSON(http.StatusOK, gin.H{"success": true, "role": result.Role})
}
