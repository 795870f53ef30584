package session

import (
	"context"
	"errors"
)

// ErrNoCredential marks the explicit absence of a stored credential,
// as opposed to a storage failure.
var ErrNoCredential = errors.New("session: no credential stored")

// Store persists the backend bearer credential for each browser
// session. It is the only durable client-side state the gateway keeps;
// the manager is its single writer.
type Store interface {
	// Save stores the credential, overwriting any previous value.
	Save(ctx context.Context, sessionID, token string) error

	// Load returns the stored credential or ErrNoCredential.
	Load(ctx context.Context, sessionID string) (string, error)

	// Clear removes the credential. Clearing an absent entry is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
