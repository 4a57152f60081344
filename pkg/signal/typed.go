package signal

import (
	"fmt"

	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/registry"
)

// Typed is a Signal whose payload type is known to the caller.
// The textual operations are those of the embedded Signal.
type Typed[T any] struct {
	*Signal
}

// NewTyped creates an unset signal carrying values of type T.
// T must be the payload type produced by the entry registered for key.
func NewTyped[T any](name string, key domain.TypeKey, reg *registry.Registry, opts ...Option) (*Typed[T], error) {
	s, err := New(name, key, reg, opts...)
	if err != nil {
		return nil, err
	}
	return &Typed[T]{Signal: s}, nil
}

// cloner is implemented by payloads backed by shared storage, such as
// linalg.Vector and linalg.Matrix.
type cloner[T any] interface {
	Clone() T
}

func detach[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Value returns a copy of the current value. ok is false if the signal is
// unset or was set textually by an entry whose payload is not a T.
func (s *Typed[T]) Value() (v T, ok bool) {
	raw, valid := s.snapshot()
	if !valid {
		return v, false
	}
	v, ok = raw.(T)
	if !ok {
		return v, false
	}
	return detach(v), true
}

// SetValue replaces the value without going through text. The entry of the
// signal's key must accept a T; otherwise the call fails with
// domain.ErrTypeMismatch and the previous value is kept. v is copied, so later
// changes by the caller do not reach the signal.
func (s *Typed[T]) SetValue(v T) (err error) {
	defer s.observe(OpSet, &err)

	entry, err := s.reg.Lookup(s.key)
	if err != nil {
		return err
	}
	if err := entry.Accepts(v); err != nil {
		s.logger.Debug("Rejected typed signal update.", "signal", s.name, "type", s.key, "err", err)
		return fmt.Errorf("signal %s: %w", s.name, err)
	}

	s.store(detach(v))
	return nil
}
