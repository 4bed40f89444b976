package engine

import (
	"errors"
	"fmt"
)

// ErrStopped is returned by Run when the engine has already stopped.
var ErrStopped = errors.New("engine: stopped")

// ConfigurationError reports a setup mistake that cannot be recovered from,
// such as a malformed collision matrix or an out-of-range collision layer.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("engine: invalid %s: %s", e.Field, e.Reason)
}

// InvariantViolation is the panic payload for programmer errors that would
// otherwise corrupt engine state.
type InvariantViolation struct {
	Op     string
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("engine: %s: %s", e.Op, e.Reason)
}

func violate(op, format string, args ...any) {
	panic(&InvariantViolation{Op: op, Reason: fmt.Sprintf(format, args...)})
}
