package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Job listings are opaque to the gateway: documents go back and forth
// verbatim, only routing and the credential are added here.

func (c *Client) Jobs(ctx context.Context, token string, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, pathWithQuery("/jobs", query), token, nil, &out)
	return out, err
}

func (c *Client) Job(ctx context.Context, token, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), token, nil, &out)
	return out, err
}

func (c *Client) CreateJob(ctx context.Context, token string, job json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/jobs", token, job, &out)
	return out, err
}

func (c *Client) UpdateJob(ctx context.Context, token, id string, job json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id), token, job, &out)
	return out, err
}

func (c *Client) DeleteJob(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), token, nil, nil)
}

// EmployerJobs lists the listings owned by the calling employer.
func (c *Client) EmployerJobs(ctx context.Context, token string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/jobs/employer", token, nil, &out)
	return out, err
}
