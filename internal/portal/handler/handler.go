package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/backend"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/gate"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/logger"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler exposes the job-board surface (jobs, applications, admin
// aggregates) as passthroughs over the backend, with the caller's
// credential attached server-side.
type Handler struct {
	backend    *backend.Client
	sessions   *session.Manager
	cookieOpts session.CookieOptions
}

func NewHandler(client *backend.Client, sessions *session.Manager, cookieOpts session.CookieOptions) *Handler {
	return &Handler{
		backend:    client,
		sessions:   sessions,
		cookieOpts: cookieOpts,
	}
}

// proxy runs one backend call with the gated session's credential and
// relays the document verbatim.
func (h *Handler) proxy(c *gin.Context, call func(ctx context.Context, token string) (json.RawMessage, error)) {
	sess, ok := gate.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "no autenticado"})
		return
	}
	out, err := call(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// fail maps a backend error onto the gateway's response. A 401 means
// the credential went stale mid-session: purge it and send the browser
// back to the login page, exactly as a fresh visit would land there.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case backend.IsUnauthorized(err):
		h.sessions.Invalidate(c.Request.Context(), gate.SessionIDFrom(c))
		session.ClearCookie(c.Writer, h.cookieOpts)
		c.Redirect(http.StatusFound, gate.LoginPath)
		c.Abort()
	case backend.IsConnectivity(err):
		logger.Error("backend unreachable", map[string]any{"error": err.Error()})
		c.JSON(http.StatusBadGateway, gin.H{"message": "No hay conexión con el servidor. Revisa tu red."})
	default:
		if apiErr, ok := backend.AsAPIError(err); ok {
			c.JSON(apiErr.StatusCode, gin.H{"message": apiErr.Message})
			return
		}
		logger.Error("backend call failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "error interno"})
	}
}

// rawBody reads and sanity-checks a JSON passthrough payload.
func rawBody(c *gin.Context) (json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return nil, false
	}
	return body, true
}
