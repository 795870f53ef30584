package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalStudents     int `json:"totalStudents"`
	TotalEmployers    int `json:"totalEmployers"`
	TotalJobs         int `json:"totalJobs"`
	TotalApplications int `json:"totalApplications"`
}

func (c *Client) Stats(ctx context.Context, token string) (Stats, error) {
	var out Stats
	err := c.do(ctx, http.MethodGet, "/users/stats", token, nil, &out)
	return out, err
}

func (c *Client) Users(ctx context.Context, token string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/users", token, nil, &out)
	return out, err
}
