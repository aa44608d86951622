package domain

import (
	"errors"

	"github.com/torii-ml/torii/pkg/utils/cmp"
)

// Result is the association "this Trial reported this Metric at least once".
//
// It is created lazily on the first value report for the (trial, metric)
// pair, and only removed by cascading deletion of its Trial.
type Result struct {
	Id      int
	TrialId int
	Metric  Metric

	// value points, ordered by step.
	Values []ResultValue
}

func (r Result) Equal(o Result) bool {
	return r.Id == o.Id &&
		r.TrialId == o.TrialId &&
		r.Metric.Equal(o.Metric) &&
		cmp.SliceEqWith(r.Values, o.Values, ResultValue.Equal)
}

// ResultValue is one (step, value) point of a Result.
//
// At most one value exists per (result, step); a later report with the
// same step overwrites the value.
type ResultValue struct {
	Id       int
	ResultId int
	Step     int
	Value    float64
}

func (v ResultValue) Equal(o ResultValue) bool {
	return v == o
}

// ResultSpec is a request to report one observation against a Trial.
type ResultSpec struct {
	TrialId int
	Metric  MetricRequest

	// nil defaults to step 0 (= a single-point "summary" report).
	Step *int

	Value float64
}

func (s ResultSpec) Validate() error {
	if s.TrialId == 0 {
		return NewInvalidSpec("trial is required")
	}
	if s.Metric.Name == "" {
		return NewInvalidSpec("metric name is required")
	}
	return nil
}

// MetricSeries is the read model of one (trial, metric) series,
// consumed by dashboards.
type MetricSeries struct {
	Metric  Metric
	TrialId int

	// parallel, ordered by step.
	Steps  []int
	Values []float64
}

// Summary reports whether the series is a single-point "summary" metric
// rather than a time series.
func (s MetricSeries) Summary() bool {
	return len(s.Values) == 1
}

// Best reduces the series to its best value along the metric's mode.
func (s MetricSeries) Best() (float64, error) {
	if len(s.Values) == 0 {
		return 0, errors.New("missing metric values")
	}
	best := s.Values[0]
	for _, v := range s.Values[1:] {
		switch s.Metric.Mode {
		case MetricMax:
			if best < v {
				best = v
			}
		case MetricMin:
			if v < best {
				best = v
			}
		default:
			return 0, errors.New("invalid mode, must be max or min")
		}
	}
	return best, nil
}

func (s MetricSeries) Equal(o MetricSeries) bool {
	return s.Metric.Equal(o.Metric) &&
		s.TrialId == o.TrialId &&
		cmp.SliceEq(s.Steps, o.Steps) &&
		cmp.SliceEq(s.Values, o.Values)
}
