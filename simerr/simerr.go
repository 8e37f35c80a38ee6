// SPDX-License-Identifier: MIT
// Package: labkit/simerr
//
// simerr.go — the two error kinds shared by every simulated object.
//
// Error policy:
//   • Object packages declare their own package-prefixed sentinels and
//     build them with Kind(...) so that errors.Is matches both the
//     specific sentinel and the general kind.
//   • Call sites attach argument context with fmt.Errorf("...: %w", ErrX).
//   • Validation always happens before mutation.

// Package simerr defines the error kinds shared by the labkit objects:
// a malformed or out-of-range argument (ErrValidation) and an operation
// invoked in an incompatible object state (ErrState).
package simerr

import (
	"errors"
	"fmt"
)

// ErrValidation classifies malformed or out-of-range arguments.
var ErrValidation = errors.New("invalid argument")

// ErrState classifies operations that the object's current state forbids,
// e.g. an elevator asked to load on a floor it is not on.
var ErrState = errors.New("invalid state")

// Kind builds a package-prefixed sentinel that wraps kind.
// The resulting message is "<pkg>: <msg>".
func Kind(pkg string, kind error, msg string) error {
	return &kindError{msg: pkg + ": " + msg, kind: kind}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsState reports whether err is (or wraps) a state error.
func IsState(err error) bool { return errors.Is(err, ErrState) }

// KindOf returns "validation", "state" or "" for err.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "validation"
	case IsState(err):
		return "state"
	default:
		return ""
	}
}

// kindError keeps the sentinel message free of the kind text while still
// unwrapping to it.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Wrapf attaches formatted context to a sentinel, preserving errors.Is.
// Output form: "<sentinel message>: <formatted context>".
func Wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
