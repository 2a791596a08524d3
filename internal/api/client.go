// Package api talks to the projects showcase endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/idilsaglam/showcase/internal/model"
)

// DefaultBaseURL is the public projects API.
const DefaultBaseURL = "https://apis.ccbp.in"

const projectsPath = "/ps/projects"

// ErrFetchFailed covers every way a fetch can fail: non-OK status,
// transport errors and undecodable bodies.
var ErrFetchFailed = errors.New("fetch failed")

// StatusError records a non-OK answer. It wraps ErrFetchFailed.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: unexpected status %d", ErrFetchFailed, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrFetchFailed }

type projectsResponse struct {
	Projects []model.Record `json:"projects"`
}

// Client fetches projects over HTTP.
type Client struct {
	base   *url.URL
	client *http.Client
}

// NewClient builds a client for base (DefaultBaseURL when empty).
func NewClient(base string, timeout time.Duration) (*Client, error) {
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", base)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:   u,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// URL returns the request URL for category.
func (c *Client) URL(category model.Category) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + projectsPath
	q := url.Values{}
	q.Set("category", category.String())
	u.RawQuery = q.Encode()
	return u.String()
}

// Projects issues GET {base}/ps/projects?category=... and maps the answer.
func (c *Client) Projects(ctx context.Context, category model.Category) ([]model.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(category), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var body projectsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrFetchFailed, err)
	}
	if body.Projects == nil {
		return nil, fmt.Errorf("%w: body has no projects", ErrFetchFailed)
	}
	return model.FromRecords(body.Projects), nil
}

// Close drops idle connections.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}
