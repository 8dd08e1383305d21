// Package store caches parsed icon collections for the life of the process.
//
// Each collection name resolves at most once to either a loaded set or
// "absent"; both outcomes are kept forever (no expiry, no eviction, no
// refresh). Concurrent requests for an uncached name share a single load.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/alnah/go-iconcss/internal/collections"
	"github.com/alnah/go-iconcss/internal/iconset"
)

// Sentinel errors for store lookups.
var (
	// ErrAbsent indicates the provider has no source for the collection.
	// This outcome is cached.
	ErrAbsent = errors.New("collection absent")

	// ErrMalformed indicates the located source could not be parsed.
	// Not cached unless the store is lenient.
	ErrMalformed = errors.New("collection data malformed")

	// ErrUnreadable indicates the located source could not be read.
	// Not cached unless the store is lenient.
	ErrUnreadable = errors.New("collection data unreadable")
)

// absent marks a cached negative outcome.
type absent struct{}

// Store is a read-through cache of collections keyed by name.
// Safe for concurrent use.
type Store struct {
	loader  collections.Loader
	items   *cache.Cache
	flights singleflight.Group
	lenient bool
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLenient makes every load failure, including unreadable or malformed
// data, a permanent "absent" outcome.
func WithLenient(lenient bool) Option {
	return func(s *Store) {
		s.lenient = lenient
	}
}

// WithLogger sets the logger for load events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store reading through loader.
func New(loader collections.Loader, opts ...Option) *Store {
	s := &Store{
		loader: loader,
		// No expiration and no janitor: entries live as long as the store.
		items:  cache.New(cache.NoExpiration, 0),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the collection for name, loading it on first use.
// Returns ErrAbsent (cached), ErrUnreadable or ErrMalformed.
func (s *Store) Get(name string) (*iconset.Set, error) {
	if v, ok := s.items.Get(name); ok {
		return unwrap(name, v)
	}

	v, err, _ := s.flights.Do(name, func() (any, error) {
		// A flight that finished between the lookup above and Do already
		// stored its outcome.
		if v, ok := s.items.Get(name); ok {
			return v, nil
		}
		return s.load(name)
	})
	if err != nil {
		return nil, err
	}
	return unwrap(name, v)
}

// Len returns the number of cached outcomes, loaded and absent.
func (s *Store) Len() int {
	return s.items.ItemCount()
}

// load asks the provider for name and records cacheable outcomes.
func (s *Store) load(name string) (any, error) {
	src, err := s.loader.Load(name)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) || errors.Is(err, collections.ErrInvalidName) {
			s.logger.Debug("collection absent", "collection", name)
			return s.remember(name, absent{}), nil
		}
		return s.fail(name, fmt.Errorf("%w: %q: %v", ErrUnreadable, name, err))
	}

	set, err := iconset.Parse(src.Data, src.Format)
	if err != nil {
		return s.fail(name, fmt.Errorf("%w: %q from %s: %v", ErrMalformed, name, src.Origin, err))
	}

	s.logger.Debug("collection loaded",
		"collection", name,
		"origin", src.Origin,
		"format", src.Format.String(),
		"icons", set.Len(),
	)
	return s.remember(name, set), nil
}

// fail reports a broken source. Lenient stores cache it as absent instead.
func (s *Store) fail(name string, err error) (any, error) {
	if s.lenient {
		s.logger.Warn("collection treated as absent", "collection", name, "error", err)
		return s.remember(name, absent{}), nil
	}
	s.logger.Warn("collection rejected", "collection", name, "error", err)
	return nil, err
}

func (s *Store) remember(name string, v any) any {
	s.items.Set(name, v, cache.NoExpiration)
	return v
}

func unwrap(name string, v any) (*iconset.Set, error) {
	if set, ok := v.(*iconset.Set); ok {
		return set, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrAbsent, name)
}
