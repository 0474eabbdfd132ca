package num

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrFormat is matched (via errors.Is) by every error caused by malformed
	// hex, decimal or byte input.
	ErrFormat = errors.New("num: invalid format")

	// ErrOverflow is returned by checked operations whose result does not fit
	// in 256 bits, or in the signed range for I256.
	ErrOverflow = errors.New("num: overflow")

	// ErrDivideByZero is returned by the checked division operations. The
	// unchecked ones panic with it.
	ErrDivideByZero = errors.New("num: division by zero")
)

// FormatError describes text or byte input that could not be parsed.
type FormatError struct {
	Type   string // "u256", "i256" or "units"
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("num: %s input %q invalid: %s", e.Type, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// FormatError reasons.
const (
	reasonEmpty       = "empty"
	reasonTooLong     = "too many digits"
	reasonDigit       = "invalid digit"
	reasonLeadingZero = "leading zero"
	reasonPrefix      = "missing 0x prefix"
	reasonFixedLength = "expected exactly 64 hex digits"
	reasonSign        = "sign not allowed"
	reasonByteLength  = "more than 32 bytes"
	reasonBinary      = "expected exactly 32 bytes"
	reasonFraction    = "too many fractional digits"
	reasonMarker      = "invalid sign marker"
	reasonJSON        = "invalid JSON string"
)

func formatErr[T text](typ string, input T, reason string) error {
	return &FormatError{Type: typ, Input: string(input), Reason: reason}
}

func overflowErr[T text](typ string, input T) error {
	return errors.Wrapf(ErrOverflow, "num: %s input %q out of range", typ, string(input))
}
