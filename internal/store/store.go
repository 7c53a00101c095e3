// Package store keeps the process-wide charging station state: the loaded
// baseline, the currently filtered view, and the load status. Every change is
// published to subscribed listeners.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rubiojr/wswcharge/internal/stations"
)

// DefaultErrorMessage is shown when the station data could not be loaded.
const DefaultErrorMessage = "Fehler beim Laden der Ladestationen. Bitte versuchen Sie es später erneut."

// Fetcher retrieves the raw Overpass document.
type Fetcher interface {
	FetchStations(ctx context.Context) (any, error)
}

// State is a read-only snapshot of the store. Stations is the filtered view.
type State struct {
	Stations  []stations.Station `json:"stations"`
	Loading   bool               `json:"loading"`
	Error     string             `json:"error,omitempty"`
	Filter    stations.Filter    `json:"filter"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Listener receives a snapshot after every change. Listeners run one at a
// time and must not call ApplyFilter.
type Listener func(State)

// Store holds the station baseline, the filtered view and the load status.
type Store struct {
	fetcher         Fetcher
	normalizer      stations.Normalizer
	log             *slog.Logger
	clock           clockwork.Clock
	errMessage      string
	fallbackOnError bool

	mu        sync.RWMutex
	all       []stations.Station
	filtered  []stations.Station
	filter    stations.Filter
	loading   bool
	loadErr   error
	errText   string
	updatedAt time.Time

	// pubMu serializes mutate+publish so listeners see changes in order.
	pubMu     sync.Mutex
	lmu       sync.RWMutex
	listeners map[string]Listener

	once sync.Once
	done chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source for UpdatedAt.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithNormalizer replaces the default WSW normalizer.
func WithNormalizer(n stations.Normalizer) Option {
	return func(s *Store) { s.normalizer = n }
}

// WithErrorMessage sets the user-facing text used when loading fails.
func WithErrorMessage(msg string) Option {
	return func(s *Store) { s.errMessage = msg }
}

// WithFallbackOnError makes a failed fetch commit the fallback dataset next
// to the error message instead of leaving the lists empty.
func WithFallbackOnError(enabled bool) Option {
	return func(s *Store) { s.fallbackOnError = enabled }
}

// New creates a store in the loading state. Nothing is fetched until Start.
func New(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		fetcher:    fetcher,
		normalizer: stations.DefaultNormalizer(),
		log:        logger,
		clock:      clockwork.NewRealClock(),
		errMessage: DefaultErrorMessage,
		all:        []stations.Station{},
		filtered:   []stations.Station{},
		loading:    true,
		listeners:  make(map[string]Listener),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start triggers the one-shot asynchronous load. Calling it again has no
// effect.
func (s *Store) Start(ctx context.Context) {
	s.once.Do(func() {
		go s.load(ctx)
	})
}

// Done is closed once the load has finished, successfully or not.
func (s *Store) Done() <-chan struct{} {
	return s.done
}

// Wait starts the load if needed and blocks until it finishes or ctx ends.
func (s *Store) Wait(ctx context.Context) error {
	s.Start(ctx)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) load(ctx context.Context) {
	defer close(s.done)

	s.log.Debug("Fetching charging stations")
	raw, err := s.fetcher.FetchStations(ctx)
	if err != nil {
		s.log.Error("Error fetching charging stations", "error", err)
		s.commit(func() {
			s.loading = false
			s.loadErr = err
			s.errText = s.errMessage
			if s.fallbackOnError {
				s.all = s.normalizer.Normalize(nil)
				s.filtered = stations.Apply(s.all, s.filter)
			}
		})
		return
	}

	list := s.normalizer.Normalize(raw)
	s.log.Info("Charging stations loaded", "count", len(list))
	s.commit(func() {
		// A filter applied while loading stays in effect.
		s.all = list
		s.filtered = stations.Apply(list, s.filter)
		s.loading = false
		s.loadErr = nil
		s.errText = ""
	})
}

// ApplyFilter recomputes the visible stations from the full baseline. It
// completes before returning and an empty filter restores the baseline.
func (s *Store) ApplyFilter(f stations.Filter) {
	s.commit(func() {
		s.filter = f
		s.filtered = stations.Apply(s.all, f)
	})
	s.log.Debug("Filter applied", "search", f.SearchTerm, "type", f.ConnectionType, "min_plugs", f.MinPlugs)
}

// commit runs mutate under the state lock and publishes the resulting
// snapshot.
func (s *Store) commit(mutate func()) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	mutate()
	s.updatedAt = s.clock.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.lmu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.lmu.RUnlock()

	for _, l := range listeners {
		l(snap)
	}
}

// Subscribe registers l for future changes and returns a function that
// removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	id := uuid.NewString()

	s.lmu.Lock()
	s.listeners[id] = l
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Stations returns the filtered view.
func (s *Store) Stations() []stations.Station {
	return s.State().Stations
}

// Loading reports whether the initial load is still running.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the cause of a failed load, or nil.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *Store) snapshotLocked() State {
	view := make([]stations.Station, len(s.filtered))
	copy(view, s.filtered)
	return State{
		Stations:  view,
		Loading:   s.loading,
		Error:     s.errText,
		Filter:    s.filter,
		UpdatedAt: s.updatedAt,
	}
}
