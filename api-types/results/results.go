package results

import (
	"github.com/torii-ml/torii-api-types/internal/utils/cmp"
	"github.com/torii-ml/torii-api-types/metrics"
)

// ResultSpec reports one observed value of a metric against a trial.
type ResultSpec struct {
	TrialId int                `json:"trialId"`
	Metric  metrics.MetricSpec `json:"metric"`

	// step 0 when omitted.
	Step *int `json:"step,omitempty"`

	Value float64 `json:"value"`
}

type Value struct {
	Step  int     `json:"step"`
	Value float64 `json:"value"`
}

type Detail struct {
	Id      int            `json:"id"`
	TrialId int            `json:"trialId"`
	Metric  metrics.Detail `json:"metric"`

	// ordered by step.
	Values []Value `json:"values"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.TrialId == o.TrialId &&
		d.Metric.Equal(o.Metric) &&
		cmp.SliceEqual(d.Values, o.Values)
}

// Series is one (trial, metric) curve of an experiment.
//
// A series with a single point at step 0 is a summary value; Best is
// the extreme of Values along the metric's mode.
type Series struct {
	Metric  metrics.Detail `json:"metric"`
	TrialId int            `json:"trialId"`
	Summary bool           `json:"summary"`
	Best    float64        `json:"best"`
	Steps   []int          `json:"steps"`
	Values  []float64      `json:"values"`
}

func (s Series) Equal(o Series) bool {
	return s.Metric.Equal(o.Metric) &&
		s.TrialId == o.TrialId &&
		s.Summary == o.Summary &&
		s.Best == o.Best &&
		cmp.SliceEqual(s.Steps, o.Steps) &&
		cmp.SliceEqual(s.Values, o.Values)
}
