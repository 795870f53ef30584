package handler

import (
	"net/http"
	"time"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sessions   *session.Manager
	cookieOpts session.CookieOptions
	sessionTTL time.Duration
}

func NewHandler(sessions *session.Manager, cookieOpts session.CookieOptions, sessionTTL time.Duration) *Handler {
	return &Handler{
		sessions:   sessions,
		cookieOpts: cookieOpts,
		sessionTTL: sessionTTL,
	}
}

// RegisterRoutes mounts the auth surface under the given group. The
// paths mirror the backend's own auth routes so the browser code can
// target the gateway with the same client it used against the API.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, requireUser gin.HandlerFunc) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/profile", h.Profile)
	api.PUT("/users/profile", requireUser, h.UpdateProfile)
}

// Logout clears the stored credential and the cookie. Both steps run
// regardless of what the other finds; logging out twice is fine.
func (h *Handler) Logout(c *gin.Context) {
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		h.sessions.Logout(c.Request.Context(), cookie.Value)
	}
	session.ClearCookie(c.Writer, h.cookieOpts)
	c.Status(http.StatusNoContent)
}
