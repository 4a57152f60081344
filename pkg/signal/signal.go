package signal

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/sigcast/internal/logging"
	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/registry"
)

// Op names a textual signal operation.
type Op string

const (
	OpSet   Op = "set"
	OpGet   Op = "get"
	OpTrace Op = "trace"
)

// Observer is notified after every textual operation.
type Observer interface {
	ObserveCast(op Op, key domain.TypeKey, err error)
}

// Signal is a named, time-stamped holder of one value whose concrete type is
// known only through its TypeKey. Textual operations go through the registry
// entry of that key.
type Signal struct {
	name     string
	key      domain.TypeKey
	reg      *registry.Registry
	observer Observer
	logger   *slog.Logger

	mu    sync.RWMutex
	value any
	valid bool
	time  int
}

// Option configures a Signal.
type Option func(*Signal)

// WithObserver reports every Set, Get and Trace to o.
func WithObserver(o Observer) Option {
	return func(s *Signal) {
		s.observer = o
	}
}

// WithLogger sets the logger used for rejected updates.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Signal) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an unset signal. The key is not resolved until the first
// textual operation, so the entry may be registered after the signal is
// declared.
func New(name string, key domain.TypeKey, reg *registry.Registry, opts ...Option) (*Signal, error) {
	if name == "" {
		return nil, fmt.Errorf("signal name is required")
	}
	if !key.Valid() {
		return nil, fmt.Errorf("signal %q: empty type key", name)
	}
	if reg == nil {
		return nil, fmt.Errorf("signal %q: registry is required", name)
	}

	s := &Signal{
		name:   name,
		key:    key,
		reg:    reg,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Name returns the signal name.
func (s *Signal) Name() string { return s.name }

// Key returns the type key fixed at construction.
func (s *Signal) Key() domain.TypeKey { return s.key }

// Time returns the generation counter. It advances on every successful update.
func (s *Signal) Time() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.time
}

// SetTime overrides the generation counter.
func (s *Signal) SetTime(t int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.time = t
}

// Valid reports whether the signal holds a value.
func (s *Signal) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valid
}

// String returns the signal header, "Sig:<name> (Type Cst)".
func (s *Signal) String() string {
	return fmt.Sprintf("Sig:%s (Type Cst)", s.name)
}

// Set parses text with the entry of the signal's key and replaces the value.
// On error the previous value and time are left untouched.
func (s *Signal) Set(text string) (err error) {
	defer s.observe(OpSet, &err)

	entry, err := s.reg.Lookup(s.key)
	if err != nil {
		return err
	}
	v, err := entry.Parse(text)
	if err != nil {
		s.logger.Debug("Rejected signal update.", "signal", s.name, "type", s.key, "err", err)
		return fmt.Errorf("signal %s: %w", s.name, err)
	}

	s.store(v)
	return nil
}

// Get renders the value in display form. An unset signal renders its header.
func (s *Signal) Get() (out string, err error) {
	defer s.observe(OpGet, &err)

	v, ok := s.snapshot()
	if !ok {
		return s.String(), nil
	}
	entry, err := s.reg.Lookup(s.key)
	if err != nil {
		return "", err
	}
	return entry.Display(v)
}

// Trace renders the value in trace form.
func (s *Signal) Trace() (out string, err error) {
	defer s.observe(OpTrace, &err)

	v, ok := s.snapshot()
	if !ok {
		return "", fmt.Errorf("signal %s: %w", s.name, domain.ErrNoValue)
	}
	entry, err := s.reg.Lookup(s.key)
	if err != nil {
		return "", err
	}
	return entry.Trace(v)
}

func (s *Signal) snapshot() (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.valid
}

func (s *Signal) store(v any) {
	s.mu.Lock()
	s.value = v
	s.valid = true
	s.time++
	s.mu.Unlock()
}

func (s *Signal) observe(op Op, err *error) {
	if s.observer != nil {
		s.observer.ObserveCast(op, s.key, *err)
	}
}
