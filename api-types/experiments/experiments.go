package experiments

import (
	"reflect"

	"github.com/torii-ml/torii-api-types/internal/utils/cmp"
	"github.com/torii-ml/torii-api-types/metrics"
)

// ExperimentSpec is a request to find-or-create an experiment.
//
// Identity is (group, identifier, hyperParameters); metrics only ever
// extend the stored set, and trialQuota overwrites the stored quota
// when present.
type ExperimentSpec struct {
	Group           string               `json:"group"`
	Identifier      string               `json:"identifier"`
	HyperParameters map[string]any       `json:"hyperParameters,omitempty"`
	Metrics         []metrics.MetricSpec `json:"metrics,omitempty"`
	TrialQuota      *int                 `json:"trialQuota,omitempty"`
}

func (s ExperimentSpec) Equal(o ExperimentSpec) bool {
	return s.Group == o.Group &&
		s.Identifier == o.Identifier &&
		reflect.DeepEqual(s.HyperParameters, o.HyperParameters) &&
		cmp.SliceEqualUnordered(s.Metrics, o.Metrics) &&
		quotaEqual(s.TrialQuota, o.TrialQuota)
}

type Detail struct {
	Id              int              `json:"id"`
	Group           string           `json:"group"`
	Identifier      string           `json:"identifier"`
	HyperParameters map[string]any   `json:"hyperParameters"`
	Metrics         []metrics.Detail `json:"metrics"`
	TrialQuota      *int             `json:"trialQuota"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Group == o.Group &&
		d.Identifier == o.Identifier &&
		reflect.DeepEqual(d.HyperParameters, o.HyperParameters) &&
		cmp.SliceEqualUnordered(d.Metrics, o.Metrics) &&
		quotaEqual(d.TrialQuota, o.TrialQuota)
}

func quotaEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
