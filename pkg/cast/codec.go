package cast

import (
	"fmt"

	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/registry"
)

// Codec is the statically typed form of a cast entry.
type Codec[T any] struct {
	Parse   func(text string) (T, error)
	Display func(value T) string
	Trace   func(value T) string
}

// Entry erases c into a registry entry for key. The erased display, trace
// and check functions refuse payloads that do not hold a T.
func Entry[T any](key domain.TypeKey, c Codec[T]) registry.Entry {
	return registry.Entry{
		Key: key,
		Parse: func(text string) (any, error) {
			v, err := c.Parse(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		Display: func(value any) (string, error) {
			v, err := unwrap[T](key, value)
			if err != nil {
				return "", err
			}
			return c.Display(v), nil
		},
		Trace: func(value any) (string, error) {
			v, err := unwrap[T](key, value)
			if err != nil {
				return "", err
			}
			return c.Trace(v), nil
		},
		Check: func(value any) error {
			_, err := unwrap[T](key, value)
			return err
		},
	}
}

// Register adds the erased form of c to reg under key.
func Register[T any](reg *registry.Registry, key domain.TypeKey, c Codec[T]) error {
	if c.Parse == nil || c.Display == nil || c.Trace == nil {
		return fmt.Errorf("codec %q: parse, display and trace are all required", key)
	}
	return reg.Register(Entry(key, c))
}

func unwrap[T any](key domain.TypeKey, value any) (T, error) {
	v, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s entry cannot render %T", domain.ErrTypeMismatch, key, value)
	}
	return v, nil
}
