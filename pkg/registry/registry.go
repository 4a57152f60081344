package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/sigcast/internal/logging"
	"github.com/aretw0/sigcast/pkg/domain"
)

// ParseFunc reads a textual value into an erased payload.
type ParseFunc func(text string) (any, error)

// FormatFunc renders an erased payload produced by the matching ParseFunc.
type FormatFunc func(value any) (string, error)

// Entry is the cast triple registered for one TypeKey.
// The payload passed to Display and Trace is only ever one produced by Parse
// or one accepted by Check.
type Entry struct {
	Key     domain.TypeKey
	Parse   ParseFunc
	Display FormatFunc
	Trace   FormatFunc

	// Check reports whether value is a payload of this entry. It is optional;
	// without it the entry only accepts payloads it parsed itself.
	Check func(value any) error
}

// Accepts reports whether value may be stored as a payload of e.
func (e Entry) Accepts(value any) error {
	if e.Check == nil {
		return fmt.Errorf("%w: %s entry accepts no direct payloads", domain.ErrTypeMismatch, e.Key)
	}
	return e.Check(value)
}

func (e Entry) validate() error {
	if !e.Key.Valid() {
		return fmt.Errorf("cast entry: empty type key")
	}
	if e.Parse == nil || e.Display == nil || e.Trace == nil {
		return fmt.Errorf("cast entry %q: parse, display and trace are all required", e.Key)
	}
	return nil
}

// Registry maps type keys to their cast entries.
// Lookups take a read lock, so registering late (from a plugin) is safe
// while signals are being operated on.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.TypeKey]Entry
	closed  bool
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report registrations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[domain.TypeKey]Entry),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a cast entry.
// If the key is already registered the call fails with
// domain.ErrDuplicateRegistration and the existing entry stays live.
func (r *Registry) Register(e Entry) error {
	if err := e.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return domain.ErrRegistryClosed
	}
	if _, exists := r.entries[e.Key]; exists {
		r.logger.Warn("Rejected duplicate cast registration.", "type", e.Key)
		return fmt.Errorf("%w: %s", domain.ErrDuplicateRegistration, e.Key)
	}
	r.entries[e.Key] = e
	r.logger.Debug("Registered cast entry.", "type", e.Key)
	return nil
}

// Lookup returns the entry registered for key.
func (r *Registry) Lookup(key domain.TypeKey) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return Entry{}, domain.ErrRegistryClosed
	}
	e, ok := r.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", domain.ErrUnknownType, key)
	}
	return e, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []domain.TypeKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]domain.TypeKey, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Close tears the registry down. Further registrations and lookups fail with
// domain.ErrRegistryClosed. Closing twice is a no-op.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.entries = nil
	r.logger.Debug("Cast registry closed.")
	return nil
}
