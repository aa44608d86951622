package domain

import (
	"fmt"
	"strings"
)

// MetricMode is the direction in which "better" moves for a Metric.
type MetricMode string

const (
	MetricMax MetricMode = "max"
	MetricMin MetricMode = "min"
)

func (m MetricMode) String() string {
	return string(m)
}

func AsMetricMode(mode string) (MetricMode, error) {
	switch mode {
	case string(MetricMax):
		return MetricMax, nil
	case string(MetricMin):
		return MetricMin, nil
	default:
		return "", fmt.Errorf("'%s' is not MetricMode", mode)
	}
}

// Metric is a named, directional measurable quantity.
//
// A name maps to exactly one mode for the lifetime of the system;
// once created, the mode is immutable.
type Metric struct {
	Id   int
	Name string
	Mode MetricMode
}

func (m Metric) Equal(o Metric) bool {
	return m.Id == o.Id && m.Name == o.Name && m.Mode == o.Mode
}

// ModeRequest is how a caller asks for a metric's mode:
// either an explicit mode, or "auto" (= infer from the name,
// or accept whatever is already stored).
//
// The zero value is "auto".
type ModeRequest struct {
	mode MetricMode
}

func AutoMode() ModeRequest {
	return ModeRequest{}
}

func ExplicitMode(mode MetricMode) ModeRequest {
	return ModeRequest{mode: mode}
}

// Explicit returns the requested mode.
// The second return value is false when the request is "auto".
func (r ModeRequest) Explicit() (MetricMode, bool) {
	return r.mode, r.mode != ""
}

func (r ModeRequest) String() string {
	if r.mode == "" {
		return "auto"
	}
	return string(r.mode)
}

// ParseModeRequest converts a wire expression into ModeRequest.
//
// "", "auto" mean auto. "max" and "min" are explicit. Anything else is an error.
func ParseModeRequest(expr string) (ModeRequest, error) {
	if expr == "" || expr == "auto" {
		return AutoMode(), nil
	}
	mode, err := AsMetricMode(expr)
	if err != nil {
		return ModeRequest{}, err
	}
	return ExplicitMode(mode), nil
}

// MetricRequest identifies a metric by name, with the caller's mode request.
type MetricRequest struct {
	Name string
	Mode ModeRequest
}

// InferMode resolves a mode from a metric name.
//
// Names containing "acc" are maximized, names containing "loss" are
// minimized. For other names no inference is possible and
// ModeInferenceError is returned.
func InferMode(name string) (MetricMode, error) {
	if strings.Contains(name, "acc") {
		return MetricMax, nil
	}
	if strings.Contains(name, "loss") {
		return MetricMin, nil
	}
	return "", ModeInferenceError{Name: name}
}
