package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"contribcard/internal/directory"
	"contribcard/internal/domain"
)

// DefaultCacheSize is the number of contributor documents kept in memory
const DefaultCacheSize = 256

// Client loads the contributor directory and contributor documents from a
// Source. It is safe for concurrent use.
type Client struct {
	source Source
	cache  *lru.Cache[string, *domain.Contributor]
	group  singleflight.Group
}

// NewClient creates a client caching up to cacheSize documents
func NewClient(source Source, cacheSize int) (*Client, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *domain.Contributor](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Client{source: source, cache: cache}, nil
}

// LoadDirectory fetches and decodes the all-contributors index. Failures are
// a *NetworkError, a *ParseError or wrap ErrNotFound.
func (c *Client) LoadDirectory(ctx context.Context) (*directory.Directory, error) {
	raw, err := c.source.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributors index: %w", err)
	}
	dir, err := directory.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &ParseError{Resource: "contributors index", Err: err}
	}
	log.WithField("contributors", dir.Len()).Info("datasource: directory loaded")
	return dir, nil
}

// Contributor returns the document of a login. Concurrent calls for the same
// login share one fetch; successful results are cached.
func (c *Client) Contributor(ctx context.Context, login string) (*domain.Contributor, error) {
	if cached, ok := c.cache.Get(login); ok {
		return cached, nil
	}

	v, err, shared := c.group.Do(login, func() (interface{}, error) {
		raw, err := c.source.Contributor(ctx, login)
		if err != nil {
			return nil, err
		}
		var contributor domain.Contributor
		if err := json.Unmarshal(raw, &contributor); err != nil {
			return nil, &ParseError{Resource: "contributor " + login, Err: err}
		}
		c.cache.Add(login, &contributor)
		return &contributor, nil
	})
	if err != nil {
		log.WithFields(log.Fields{"login": login, "shared": shared}).WithError(err).Debug("datasource: contributor fetch failed")
		return nil, err
	}
	return v.(*domain.Contributor), nil
}

// Forget drops every cached document
func (c *Client) Forget() {
	c.cache.Purge()
}
