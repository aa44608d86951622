package domain

import (
	"errors"
	"fmt"
)

// a metric name has no stored mode, no explicit mode was requested and
// the name matches no inference heuristic.
var ErrModeInference = errors.New("metric mode can not be inferred")

// an explicit mode request disagrees with the mode already stored
// for that metric name.
var ErrModeConflict = errors.New("metric mode conflicts with the stored one")

// a request payload fails structural validation.
var ErrInvalidSpec = errors.New("invalid spec")

// NewInvalidSpec builds an error matching ErrInvalidSpec by errors.Is.
func NewInvalidSpec(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}

type ModeInferenceError struct {
	Name string
}

var _ error = ModeInferenceError{}

func (e ModeInferenceError) Error() string {
	return fmt.Sprintf(`mode could not be inferred from the name: "%s"`, e.Name)
}

func (e ModeInferenceError) Unwrap() error {
	return ErrModeInference
}

type ModeConflictError struct {
	Name      string
	Stored    MetricMode
	Requested MetricMode
}

var _ error = ModeConflictError{}

func (e ModeConflictError) Error() string {
	return fmt.Sprintf(
		"metric with name=%s exists but with mode=%s instead of the given mode=%s",
		e.Name, e.Stored, e.Requested,
	)
}

func (e ModeConflictError) Unwrap() error {
	return ErrModeConflict
}
