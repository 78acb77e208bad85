package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnknownUnit           = errors.New("unknown unit")
	ErrMissingIngredient     = errors.New("missing ingredient")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrInvalidDensity        = errors.New("invalid density")

	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrConflict      = errors.New("conflict")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUnknownUnit           ErrorKind = "unknown_unit"
	KindMissingIngredient     ErrorKind = "missing_ingredient"
	KindUnsupportedConversion ErrorKind = "unsupported_conversion"
	KindInvalidDensity        ErrorKind = "invalid_density"

	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindConflict      ErrorKind = "conflict"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

func conversionError(op string, kind ErrorKind, sentinel error, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: kind,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel),
	}
}
