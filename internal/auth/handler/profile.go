package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/gate"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/session"

	"github.com/gin-gonic/gin"
)

// Profile resolves the caller's session into the user document, the
// same shape the backend's own profile endpoint answers with. An
// unresolvable session is a plain 401, never an error page.
func (h *Handler) Profile(c *gin.Context) {
	sessionID, _ := c.Cookie(session.CookieName)
	sess := h.sessions.Hydrate(c.Request.Context(), sessionID)
	if sess.State != session.StateAuthenticated {
		session.ClearCookie(c.Writer, h.cookieOpts)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "no autenticado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.Identity})
}

// UpdateProfile runs behind the any-role gate. The refreshed user
// document comes from the backend, not from the submitted payload.
func (h *Handler) UpdateProfile(c *gin.Context) {
	fields, err := c.GetRawData()
	if err != nil || !json.Valid(fields) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	sessionID := gate.SessionIDFrom(c)
	result, user := h.sessions.UpdateProfile(c.Request.Context(), sessionID, fields)
	if !result.Success {
		if result.Status == http.StatusUnauthorized {
			session.ClearCookie(c.Writer, h.cookieOpts)
		}
		c.JSON(result.Status, gin.H{"success": false, "message": result.Message})
		return
	}

	resp := gin.H{"success": true}
	if user != nil {
		resp["user"] = user
	}
	c.JSON(result.Status, resp)
}
