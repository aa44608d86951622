package domain

import (
	"encoding/json"

	"github.com/torii-ml/torii/pkg/utils/cmp"
	"github.com/torii-ml/torii/pkg/utils/pointer"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

// HyperParameters is an arbitrary mapping of name -> scalar which,
// together with (group, identifier), identifies an Experiment.
//
// Identity comparison is done on the canonical serialization, so two
// mappings with the same entries in different order are the same.
type HyperParameters map[string]any

// Canonical returns the deterministic serialization of hp,
// used as a part of the experiment's natural key.
//
// Keys are sorted (encoding/json marshals map keys in sorted order).
// nil is canonicalized as the empty mapping.
func (hp HyperParameters) Canonical() (string, error) {
	if hp == nil {
		hp = HyperParameters{}
	}
	b, err := json.Marshal(hp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (hp HyperParameters) Equal(o HyperParameters) bool {
	a, err := hp.Canonical()
	if err != nil {
		return false
	}
	b, err := o.Canonical()
	if err != nil {
		return false
	}
	return a == b
}

// Experiment is a named, parameterized unit of comparable work.
//
// Identity is the triple (Group, Identifier, canonical HyperParameters),
// stable after creation. The metric set grows monotonically; the trial
// quota is overwritten by later get-or-create calls which provide one.
type Experiment struct {
	Id              int
	Group           string
	Identifier      string
	HyperParameters HyperParameters

	// nil = unbounded.
	TrialQuota *int

	Metrics []Metric
}

func (e Experiment) Equal(o Experiment) bool {
	return e.Id == o.Id &&
		e.Group == o.Group &&
		e.Identifier == o.Identifier &&
		e.HyperParameters.Equal(o.HyperParameters) &&
		pointer.Equal(e.TrialQuota, o.TrialQuota) &&
		cmp.SliceContentEqWith(e.Metrics, o.Metrics, Metric.Equal)
}

// ExperimentSpec is a request to get-or-create an Experiment.
type ExperimentSpec struct {
	Group           string
	Identifier      string
	HyperParameters HyperParameters

	// metrics to be associated. Resolved before any experiment mutation.
	Metrics []MetricRequest

	// nil = keep the stored quota (or default 1 on create).
	TrialQuota *int
}

func (s ExperimentSpec) Validate() error {
	if s.Group == "" {
		return NewInvalidSpec("experiment group is required")
	}
	if s.Identifier == "" {
		return NewInvalidSpec("experiment identifier is required")
	}
	names := slices.Map(s.Metrics, func(m MetricRequest) string { return m.Name })
	for i, n := range names {
		if n == "" {
			return NewInvalidSpec("metric name is required")
		}
		for _, o := range names[:i] {
			if n == o {
				return NewInvalidSpec("metric names should be unique in a request")
			}
		}
	}
	return nil
}

// ExperimentFindQuery narrows Find results. Empty fields do not narrow.
type ExperimentFindQuery struct {
	Group      string
	Identifier string
}
