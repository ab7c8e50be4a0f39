/*
errors.go - Validation error types for the engine

PURPOSE:
  All validation failures are returned as data from Compute. Two kinds are
  distinguished so a UI can render different messages:

  1. Parse errors  - the field could not be read as a number at all
  2. Domain errors - numerically valid but outside the allowed range

  The undefined true rate is NOT an error: it is a property of the result
  (see TrueRate in types.go) and is represented there, not here.

USAGE:
  _, errs := engine.Compute(raw)
  for _, e := range errs {
      if engine.IsParseError(e) { ... }
  }

SEE ALSO:
  - input.go: Produces these errors during validation
*/
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrParse is the category of failures where input text could not be
	// interpreted as a number.
	ErrParse = errors.New("not a number")

	// ErrDomain is the category of failures where a parsed value violates
	// a range or cross-field constraint.
	ErrDomain = errors.New("out of range")
)

// ErrorKind classifies a FieldError.
type ErrorKind string

const (
	KindParse  ErrorKind = "parse"
	KindDomain ErrorKind = "domain"
)

// =============================================================================
// FIELD ERRORS - Field-scoped, display-ready validation failures
// =============================================================================

// FieldError names the offending field and the violated rule in plain
// language suitable for direct display next to the form control.
type FieldError struct {
	Field   Field
	Kind    ErrorKind
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e FieldError) Unwrap() error {
	if e.Kind == KindParse {
		return ErrParse
	}
	return ErrDomain
}

// FieldErrors is the full validation outcome. Compute never returns a
// partial result alongside errors: it is either a result or this list.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByField returns the errors for a single field, preserving order.
func (e FieldErrors) ByField(f Field) []FieldError {
	var out []FieldError
	for _, fe := range e {
		if fe.Field == f {
			out = append(out, fe)
		}
	}
	return out
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsParseError reports whether err is (or wraps) a parse failure.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsDomainError reports whether err is (or wraps) a domain failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func parseError(f Field) FieldError {
	return FieldError{Field: f, Kind: KindParse, Message: "must be a number"}
}

func domainError(f Field, message string) FieldError {
	return FieldError{Field: f, Kind: KindDomain, Message: message}
}
