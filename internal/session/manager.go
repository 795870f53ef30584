package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/backend"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/identity"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/logger"
)

// State describes where a session is in its lifecycle.
type State int

const (
	// StateHydrating means the credential has been read but not yet
	// resolved against the backend. Hydrate never returns this state;
	// it exists so the gate can express "don't decide yet".
	StateHydrating State = iota
	StateAnonymous
	StateAuthenticated
)

// Session is the settled pairing of identity, credential and lifecycle
// state. Identity is nil except in StateAuthenticated, and Token is
// never empty while Identity is set.
type Session struct {
	State    State
	Identity *identity.Identity
	Token    string
}

// Result is what identity-changing operations report back to handlers.
// All backend errors are converted here; none escape as raw errors.
type Result struct {
	Success   bool
	Status    int
	Message   string
	Role      identity.Role
	SessionID string
}

// Manager is the single source of truth for who is logged in on a given
// session. It is the only writer of the credential store.
type Manager struct {
	store   Store
	backend *backend.Client
}

func NewManager(store Store, client *backend.Client) *Manager {
	return &Manager{store: store, backend: client}
}

// Hydrate resolves a session id into a settled session. Any failure to
// turn a stored credential into an identity, whatever the cause, purges
// the credential and lands on Anonymous: a stale token must look like
// "never logged in", not like an error.
func (m *Manager) Hydrate(ctx context.Context, sessionID string) Session {
	if sessionID == "" {
		return Session{State: StateAnonymous}
	}

	token, err := m.store.Load(ctx, sessionID)
	if errors.Is(err, ErrNoCredential) {
		return Session{State: StateAnonymous}
	}
	if err != nil {
		logger.Warn("credential store unavailable", map[string]any{
			"error": err.Error(),
		})
		return Session{State: StateAnonymous}
	}

	user, err := m.backend.Profile(ctx, token)
	if err != nil {
		m.Invalidate(ctx, sessionID)
		return Session{State: StateAnonymous}
	}

	return Session{State: StateAuthenticated, Identity: &user, Token: token}
}

// Login exchanges credentials for a new session. A failed attempt never
// touches stored state, so an existing valid session survives it. On
// success the previous session entry, if any, is replaced.
func (m *Manager) Login(ctx context.Context, priorSessionID, email, password string) Result {
	if email == "" || password == "" {
		return Result{Status: http.StatusBadRequest, Message: msgLoginFallback}
	}

	token, user, err := m.backend.Login(ctx, email, password)
	if err != nil {
		status, message := classifyLoginError(err)
		return Result{Status: status, Message: message}
	}

	sessionID, err := GenerateID()
	if err != nil {
		return Result{Status: http.StatusInternalServerError, Message: msgLoginFallback}
	}
	if err := m.store.Save(ctx, sessionID, token); err != nil {
		logger.Error("failed to persist credential", map[string]any{
			"error": err.Error(),
		})
		return Result{Status: http.StatusInternalServerError, Message: msgLoginFallback}
	}

	if priorSessionID != "" && priorSessionID != sessionID {
		_ = m.store.Clear(ctx, priorSessionID)
	}

	return Result{
		Success:   true,
		Status:    http.StatusOK,
		Role:      user.Role,
		SessionID: sessionID,
	}
}

// Register forwards the submitted fields as-is. The backend assigns the
// role and owns validation; no session is created on success.
func (m *Manager) Register(ctx context.Context, fields json.RawMessage) Result {
	if err := m.backend.Register(ctx, fields); err != nil {
		status, message := classifyError(err, msgRegisterFallback)
		return Result{Status: status, Message: message}
	}
	return Result{Success: true, Status: http.StatusCreated}
}

// Logout clears the stored credential. It never fails the caller and
// clearing an already-cleared session is a no-op.
func (m *Manager) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := m.store.Clear(ctx, sessionID); err != nil {
		logger.Warn("failed to clear credential", map[string]any{
			"error": err.Error(),
		})
	}
}

// Invalidate purges a credential the backend has rejected.
func (m *Manager) Invalidate(ctx context.Context, sessionID string) {
	m.Logout(ctx, sessionID)
}

// UpdateProfile applies a partial update and then re-fetches the
// profile from the backend: the submitted payload is never trusted as
// the new truth. On failure the caller's previous identity stands. A
// refreshed identity is returned when the re-fetch succeeds; if the
// update lands but the re-fetch does not, the session is invalidated
// the same way a failed hydration would be.
func (m *Manager) UpdateProfile(ctx context.Context, sessionID string, fields json.RawMessage) (Result, *identity.Identity) {
	token, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return Result{Status: http.StatusUnauthorized, Message: msgUpdateFallback}, nil
	}

	if err := m.backend.UpdateProfile(ctx, token, fields); err != nil {
		if backend.IsUnauthorized(err) {
			m.Invalidate(ctx, sessionID)
			return Result{Status: http.StatusUnauthorized, Message: msgUpdateFallback}, nil
		}
		status, message := classifyError(err, msgUpdateFallback)
		return Result{Status: status, Message: message}, nil
	}

	user, err := m.backend.Profile(ctx, token)
	if err != nil {
		m.Invalidate(ctx, sessionID)
		return Result{Success: true, Status: http.StatusOK}, nil
	}

	return Result{Success: true, Status: http.StatusOK}, &user
}

// Token returns the stored credential for passthrough calls to the
// backend. Views never see it; only handlers forwarding requests do.
func (m *Manager) Token(ctx context.Context, sessionID string) (string, error) {
	return m.store.Load(ctx, sessionID)
}
