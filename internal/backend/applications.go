package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) Apply(ctx context.Context, token string, application json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/applications", token, application, &out)
	return out, err
}

func (c *Client) StudentApplications(ctx context.Context, token string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/applications/student", token, nil, &out)
	return out, err
}

func (c *Client) JobApplications(ctx context.Context, token, jobID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/applications/job/"+url.PathEscape(jobID), token, nil, &out)
	return out, err
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, token, id, status string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPatch, "/applications/"+url.PathEscape(id), token, map[string]string{
		"status": status,
	}, &out)
	return out, err
}
