package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a conversion failed. Every kind is a local,
// recoverable validation failure.
type ErrorKind uint8

const (
	InvalidHex ErrorKind = iota + 1
	InvalidBase58
	InvalidLength
	InvalidEvmAddress
	ChecksumMismatch
	OutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidHex:
		return "invalid hex"
	case InvalidBase58:
		return "invalid base58"
	case InvalidLength:
		return "invalid length"
	case InvalidEvmAddress:
		return "invalid evm address"
	case ChecksumMismatch:
		return "checksum mismatch"
	case OutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("unknown error kind %d", uint8(k))
	}
}

// Sentinels usable with errors.Is against any *ConversionError.
var (
	ErrInvalidHex        = &ConversionError{Kind: InvalidHex}
	ErrInvalidBase58     = &ConversionError{Kind: InvalidBase58}
	ErrInvalidLength     = &ConversionError{Kind: InvalidLength}
	ErrInvalidEvmAddress = &ConversionError{Kind: InvalidEvmAddress}
	ErrChecksumMismatch  = &ConversionError{Kind: ChecksumMismatch}
	ErrOutOfRange        = &ConversionError{Kind: OutOfRange}
)

// ConversionError is the only error type returned by the conversion
// packages. Err optionally carries the lower level cause, which may itself
// be a *ConversionError of another kind (e.g. InvalidEvmAddress wrapping
// InvalidHex).
type ConversionError struct {
	Kind  ErrorKind
	Input string
	Err   error
}

func NewConversionError(kind ErrorKind, input string, cause error) *ConversionError {
	return &ConversionError{Kind: kind, Input: input, Err: cause}
}

func (e *ConversionError) Error() string {
	msg := e.Kind.String()
	if e.Input != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Input)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is reports a match on Kind alone so the package sentinels work with
// errors.Is regardless of Input and cause.
func (e *ConversionError) Is(target error) bool {
	t, ok := target.(*ConversionError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the outermost ConversionError in err's chain,
// or 0 when there is none.
func KindOf(err error) ErrorKind {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// IsKind reports whether any ConversionError in err's chain has kind.
func IsKind(err error, kind ErrorKind) bool {
	return errors.Is(err, &ConversionError{Kind: kind})
}
