package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/site/data/contributors.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"alice": 1}, {"bob": 2}]`))
	})
	mux.HandleFunc("/site/data/alice.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "login": "alice"}`))
	})
	mux.HandleFunc("/site/data/broken.json", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_Index(t *testing.T) {
	srv := newTestServer(t)
	src, err := NewHTTPSource(srv.URL+"/site", "", 5*time.Second)
	require.NoError(t, err)

	body, err := src.Index(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[{"alice": 1}, {"bob": 2}]`, string(body))
}

func TestHTTPSource_Contributor(t *testing.T) {
	srv := newTestServer(t)
	src, err := NewHTTPSource(srv.URL+"/site/", "", 5*time.Second)
	require.NoError(t, err)

	body, err := src.Contributor(context.Background(), "alice")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "login": "alice"}`, string(body))
}

func TestHTTPSource_NotFound(t *testing.T) {
	srv := newTestServer(t)
	src, err := NewHTTPSource(srv.URL+"/site", "", 5*time.Second)
	require.NoError(t, err)

	_, err = src.Contributor(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPSource_ServerErrorIsNetworkError(t *testing.T) {
	srv := newTestServer(t)
	src, err := NewHTTPSource(srv.URL+"/site", "", 5*time.Second)
	require.NoError(t, err)

	_, err = src.Contributor(context.Background(), "broken")

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
}

func TestHTTPSource_TransportErrorIsNetworkError(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL
	srv.Close()
	src, err := NewHTTPSource(base, "", time.Second)
	require.NoError(t, err)

	_, err = src.Index(context.Background())

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestHTTPSource_RejectsPathLikeLogins(t *testing.T) {
	src, err := NewHTTPSource("https://example.com", "", time.Second)
	require.NoError(t, err)

	for _, login := range []string{"", "../etc/passwd", "a/b", `a\b`} {
		_, err := src.Contributor(context.Background(), login)
		assert.ErrorIs(t, err, ErrNotFound, login)
	}
}

func TestNewHTTPSource_InvalidURL(t *testing.T) {
	_, err := NewHTTPSource("ftp://example.com", "", time.Second)
	assert.Error(t, err)

	_, err = NewHTTPSource("://nope", "", time.Second)
	assert.Error(t, err)
}
