package cast

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/registry"
)

// Scalar lists the types with a standard textual conversion.
type Scalar interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~bool | ~string
}

// DefaultCodec converts T with its standard textual read and write.
// Parsing trims surrounding whitespace and then requires the whole input to
// be consumed; anything else is a *domain.ConversionError.
// Display and trace are identical: the written value and a newline.
func DefaultCodec[T Scalar](key domain.TypeKey) Codec[T] {
	write := func(v T) string { return FormatScalar(v) + "\n" }
	return Codec[T]{
		Parse:   func(text string) (T, error) { return ParseScalar[T](key, text) },
		Display: write,
		Trace:   write,
	}
}

// RegisterDefault registers DefaultCodec[T] under key.
func RegisterDefault[T Scalar](reg *registry.Registry, key domain.TypeKey) error {
	return Register(reg, key, DefaultCodec[T](key))
}

// ParseScalar reads text as a T.
func ParseScalar[T Scalar](key domain.TypeKey, text string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	s := strings.TrimSpace(text)

	fail := func(err error) (T, error) {
		var zero T
		return zero, &domain.ConversionError{Key: key, Input: text, Err: err}
	}

	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return fail(err)
		}
		rv.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return fail(err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return fail(err)
		}
		rv.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fail(err)
		}
		rv.SetBool(b)
	case reflect.String:
		if s == "" {
			return fail(nil)
		}
		rv.SetString(s)
	}
	return v, nil
}

// FormatScalar writes v the way a default-configured output stream would:
// floats with six significant digits, booleans as 1 or 0.
func FormatScalar[T Scalar](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Bool:
		if rv.Bool() {
			return "1"
		}
		return "0"
	default:
		return rv.String()
	}
}

// FormatFloat writes f with six significant digits, trailing zeros dropped.
func FormatFloat(f float64) string { return formatFloat(f, 64) }

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, bits)
}
