// Package datasource reads the static data produced by the contribcard build:
// the all-contributors index and one JSON document per contributor.
package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultIndexPath is the index location relative to the data root
	DefaultIndexPath = "data/contributors.json"
	// DataPath is the directory holding per-contributor documents
	DataPath = "data"
)

// Source returns raw documents from wherever the data lives
type Source interface {
	Index(ctx context.Context) ([]byte, error)
	Contributor(ctx context.Context, login string) ([]byte, error)
}

// ContributorPath returns the document path of a login relative to the root
func ContributorPath(login string) string {
	return path.Join(DataPath, login+".json")
}

// HTTPSource fetches documents with plain GET requests
type HTTPSource struct {
	baseURL   *url.URL
	indexPath string
	client    *http.Client
}

// NewHTTPSource creates a source rooted at baseURL
func NewHTTPSource(baseURL, indexPath string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if indexPath == "" {
		indexPath = DefaultIndexPath
	}
	return &HTTPSource{
		baseURL:   u,
		indexPath: indexPath,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Index implements Source
func (s *HTTPSource) Index(ctx context.Context) ([]byte, error) {
	return s.get(ctx, s.indexPath)
}

// Contributor implements Source
func (s *HTTPSource) Contributor(ctx context.Context, login string) ([]byte, error) {
	if !validLogin(login) {
		return nil, ErrNotFound
	}
	return s.get(ctx, path.Join(DataPath, url.PathEscape(login)+".json"))
}

func (s *HTTPSource) get(ctx context.Context, rel string) ([]byte, error) {
	target := s.baseURL.String() + strings.TrimLeft(rel, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log.WithField("url", target).Debug("datasource: GET")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", target, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &NetworkError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	return body, nil
}
