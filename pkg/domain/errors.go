package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when no cast entry is registered for a TypeKey.
var ErrUnknownType = errors.New("unknown type")

// ErrDuplicateRegistration is returned when a TypeKey already has a live cast entry.
var ErrDuplicateRegistration = errors.New("duplicate registration")

// ErrMalformedLiteral is the kind shared by every structured-literal grammar violation.
var ErrMalformedLiteral = errors.New("malformed literal")

// ErrConversionFailure is returned when a scalar textual read does not fully
// and validly consume its input.
var ErrConversionFailure = errors.New("conversion failure")

// ErrRegistryClosed is returned by a registry after teardown.
var ErrRegistryClosed = errors.New("registry closed")

// ErrNoValue is returned when tracing a signal that was never set.
var ErrNoValue = errors.New("signal has no value")

// ErrTypeMismatch is returned when an erased payload does not hold the type
// its cast entry expects.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrSignalNotFound is returned when a signal table has no signal of that name.
var ErrSignalNotFound = errors.New("signal not found")

// ErrDuplicateSignal is returned when a signal table already holds that name.
var ErrDuplicateSignal = errors.New("duplicate signal")

// Kind is the closed set of error kinds raised by the cast layer.
type Kind int

const (
	// KindOther covers errors outside the cast layer (I/O, config, ...).
	KindOther Kind = iota
	KindUnknownType
	KindDuplicateRegistration
	KindMalformedLiteral
	KindConversionFailure
)

func (k Kind) String() string {
	switch k {
	case KindUnknownType:
		return "UnknownType"
	case KindDuplicateRegistration:
		return "DuplicateRegistration"
	case KindMalformedLiteral:
		return "MalformedLiteral"
	case KindConversionFailure:
		return "ConversionFailure"
	default:
		return "Other"
	}
}

// KindOf classifies err. Wrapped errors are matched with errors.Is.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, ErrUnknownType):
		return KindUnknownType
	case errors.Is(err, ErrDuplicateRegistration):
		return KindDuplicateRegistration
	case errors.Is(err, ErrMalformedLiteral):
		return KindMalformedLiteral
	case errors.Is(err, ErrConversionFailure):
		return KindConversionFailure
	default:
		return KindOther
	}
}

// MalformedLiteralError reports the first unmet expectation of the literal grammar.
type MalformedLiteralError struct {
	Input    string // The literal being parsed
	Pos      int    // Byte offset where the expectation failed
	Expected string // What the grammar expected at Pos
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed literal at offset %d: expected %s", e.Pos, e.Expected)
}

// Unwrap lets errors.Is match ErrMalformedLiteral.
func (e *MalformedLiteralError) Unwrap() error {
	return ErrMalformedLiteral
}

// ConversionError reports a scalar conversion that failed for a given key.
type ConversionError struct {
	Key   TypeKey
	Input string
	Err   error // Underlying strconv error, if any
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot convert %q to %s", e.Input, e.Key)
	}
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Input, e.Key, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversionFailure}
	}
	return []error{ErrConversionFailure, e.Err}
}
