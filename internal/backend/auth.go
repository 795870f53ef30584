package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/identity"
)

// Login exchanges credentials for a bearer token and the user document.
func (c *Client) Login(ctx context.Context, email, password string) (string, identity.Identity, error) {
	var out struct {
		Token string            `json:"token"`
		User  identity.Identity `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", identity.Identity{}, err
	}
	return out.Token, out.User, nil
}

// Register forwards the full submitted field set. The backend owns all
// validation and role assignment; the response body is ignored.
func (c *Client) Register(ctx context.Context, fields json.RawMessage) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", fields, nil)
}

// Profile resolves a bearer token into the identity it authenticates.
func (c *Client) Profile(ctx context.Context, token string) (identity.Identity, error) {
	var out struct {
		User identity.Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &out); err != nil {
		return identity.Identity{}, err
	}
	return out.User, nil
}

// UpdateProfile sends a partial profile update. Callers must re-fetch
// Profile afterwards; the response body here is not the new truth.
func (c *Client) UpdateProfile(ctx context.Context, token string, fields json.RawMessage) error {
	return c.do(ctx, http.MethodPut, "/users/profile", token, fields, nil)
}
