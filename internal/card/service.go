// Package card turns a committed search selection into a loaded contributor
// card and holds the presentation helpers the card view needs.
package card

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"contribcard/internal/datasource"
	"contribcard/internal/domain"
	"contribcard/internal/eventbus"
)

// Fetcher returns the document of a contributor
type Fetcher interface {
	Contributor(ctx context.Context, login string) (*domain.Contributor, error)
}

// Selector records the selected contributor and announces it on the bus.
// It is the search controller's Navigator.
type Selector struct {
	bus     eventbus.EventBus
	mu      sync.RWMutex
	current string
}

// NewSelector creates a selector publishing to bus
func NewSelector(bus eventbus.EventBus) *Selector {
	return &Selector{bus: bus}
}

// GoTo selects login
func (s *Selector) GoTo(login string) {
	s.mu.Lock()
	s.current = login
	s.mu.Unlock()

	log.WithField("login", login).Info("card: contributor selected")
	s.bus.Publish(eventbus.ContributorSelectedEvent{Login: login})
}

// Current returns the selected login, "" if none
func (s *Selector) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Clear drops the current selection
func (s *Selector) Clear() {
	s.mu.Lock()
	s.current = ""
	s.mu.Unlock()
}

// Service loads cards for selected contributors
type Service struct {
	bus         eventbus.EventBus
	fetcher     Fetcher
	timeout     time.Duration
	unsubscribe func()
}

// NewService creates a card service and subscribes it to selections
func NewService(bus eventbus.EventBus, fetcher Fetcher, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	s := &Service{
		bus:     bus,
		fetcher: fetcher,
		timeout: timeout,
	}

	s.unsubscribe = bus.Subscribe(eventbus.EventContributorSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ContributorSelectedEvent); ok {
			ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
			defer cancel()
			s.Load(ctx, event.Login)
		}
	})

	return s
}

// Load fetches the card of login and publishes the outcome. Failures are
// reported, not retried.
func (s *Service) Load(ctx context.Context, login string) {
	contributor, err := s.fetcher.Contributor(ctx, login)
	switch {
	case err == nil:
		log.WithField("login", login).Debug("card: loaded")
		s.bus.Publish(eventbus.CardLoadedEvent{Login: login, Contributor: contributor})
	case errors.Is(err, datasource.ErrNotFound):
		log.WithField("login", login).Info("card: contributor not found")
		s.bus.Publish(eventbus.CardNotFoundEvent{Login: login})
	default:
		log.WithField("login", login).WithError(err).Warn("card: failed to load")
		s.bus.Publish(eventbus.CardFailedEvent{Login: login, Err: err})
	}
}

// Close unsubscribes the service from the bus
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
