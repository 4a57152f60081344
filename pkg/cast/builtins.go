package cast

import (
	"errors"

	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/linalg"
	"github.com/aretw0/sigcast/pkg/registry"
)

// RegisterBuiltins registers the scalar, vector and matrix entries under the
// domain.Key* constants. It reports every failed registration.
func RegisterBuiltins(reg *registry.Registry) error {
	return errors.Join(
		RegisterDefault[float64](reg, domain.KeyDouble),
		RegisterDefault[float32](reg, domain.KeyFloat),
		RegisterDefault[int](reg, domain.KeyInt),
		RegisterDefault[int64](reg, domain.KeyInt64),
		RegisterDefault[uint](reg, domain.KeyUint),
		RegisterDefault[bool](reg, domain.KeyBool),
		RegisterDefault[string](reg, domain.KeyString),
		Register[linalg.Vector](reg, domain.KeyVector, VectorCodec()),
		Register[linalg.Matrix](reg, domain.KeyMatrix, MatrixCodec()),
	)
}
