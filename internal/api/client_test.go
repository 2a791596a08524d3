package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/showcase/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestProjects_OK(t *testing.T) {
	var gotPath, gotCategory string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCategory = r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"projects":[{"id":"1","image_url":"u","name":"n"},{"id":"2","image_url":"v","name":"m"}]}`))
	})

	got, err := c.Projects(context.Background(), model.CategoryReact)
	require.NoError(t, err)
	assert.Equal(t, "/ps/projects", gotPath)
	assert.Equal(t, "REACT", gotCategory)
	assert.Equal(t, []model.Project{
		{ID: "1", ImageURL: "u", Name: "n"},
		{ID: "2", ImageURL: "v", Name: "m"},
	}, got)
}

func TestProjects_EmptyList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"projects":[]}`))
	})
	got, err := c.Projects(context.Background(), model.CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProjects_NonOK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})
	_, err := c.Projects(context.Background(), model.CategoryAll)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
}

func TestProjects_BadBody(t *testing.T) {
	for name, body := range map[string]string{
		"garbage":     `not json`,
		"no projects": `{"items":[]}`,
		"null":        `{"projects":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := c.Projects(context.Background(), model.CategoryAll)
			assert.ErrorIs(t, err, ErrFetchFailed)
		})
	}
}

func TestProjects_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewClient(base, time.Second)
	require.NoError(t, err)
	_, err = c.Projects(context.Background(), model.CategoryAll)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestProjects_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"projects":[]}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Projects(ctx, model.CategoryAll)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestURL(t *testing.T) {
	c, err := NewClient("https://apis.ccbp.in/", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "https://apis.ccbp.in/ps/projects?category=DYNAMIC", c.URL(model.CategoryDynamic))

	c, err = NewClient("", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://apis.ccbp.in/ps/projects?category=ALL", c.URL(model.CategoryAll))
}

func TestNewClient_RejectsRelative(t *testing.T) {
	_, err := NewClient("apis.ccbp.in", time.Second)
	assert.Error(t, err)
}
