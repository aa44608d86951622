package domain_test

import (
	"errors"
	"testing"

	"github.com/torii-ml/torii/pkg/domain"
)

func TestHyperParameters_Canonical(t *testing.T) {
	t.Run("key order does not matter", func(t *testing.T) {
		a := domain.HyperParameters{"lr": 0.01, "batch_size": 32, "optimizer": "adam"}
		b := domain.HyperParameters{"optimizer": "adam", "lr": 0.01, "batch_size": 32}

		ca, err := a.Canonical()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		cb, err := b.Canonical()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if ca != cb {
			t.Errorf("canonical forms differ: %s != %s", ca, cb)
		}
	})

	t.Run("keys are sorted in the serialization", func(t *testing.T) {
		hp := domain.HyperParameters{"zeta": 1, "alpha": 2}
		c, err := hp.Canonical()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if c != `{"alpha":2,"zeta":1}` {
			t.Errorf("unexpected canonical form: %s", c)
		}
	})

	t.Run("nil is the empty mapping", func(t *testing.T) {
		var hp domain.HyperParameters
		c, err := hp.Canonical()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if c != "{}" {
			t.Errorf("nil should canonicalize to {}, got %s", c)
		}
		if !hp.Equal(domain.HyperParameters{}) {
			t.Error("nil and empty HyperParameters should be equal")
		}
	})

	t.Run("different values are not equal", func(t *testing.T) {
		a := domain.HyperParameters{"lr": 0.01}
		b := domain.HyperParameters{"lr": 0.02}
		if a.Equal(b) {
			t.Error("they should not be equal")
		}
	})
}

func TestExperimentSpec_Validate(t *testing.T) {
	for name, testcase := range map[string]struct {
		spec domain.ExperimentSpec
		ok   bool
	}{
		"a spec with group and identifier is valid": {
			spec: domain.ExperimentSpec{Group: "mnist", Identifier: "cnn-v2"},
			ok:   true,
		},
		"a spec with metrics is valid": {
			spec: domain.ExperimentSpec{
				Group: "mnist", Identifier: "cnn-v2",
				Metrics: []domain.MetricRequest{
					{Name: "val_acc"},
					{Name: "train_loss", Mode: domain.ExplicitMode(domain.MetricMin)},
				},
			},
			ok: true,
		},
		"a spec without group is invalid": {
			spec: domain.ExperimentSpec{Identifier: "cnn-v2"},
		},
		"a spec without identifier is invalid": {
			spec: domain.ExperimentSpec{Group: "mnist"},
		},
		"a spec with a nameless metric is invalid": {
			spec: domain.ExperimentSpec{
				Group: "mnist", Identifier: "cnn-v2",
				Metrics: []domain.MetricRequest{{Name: ""}},
			},
		},
		"a spec with duplicated metric names is invalid": {
			spec: domain.ExperimentSpec{
				Group: "mnist", Identifier: "cnn-v2",
				Metrics: []domain.MetricRequest{{Name: "val_acc"}, {Name: "val_acc"}},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := testcase.spec.Validate()
			if testcase.ok {
				if err != nil {
					t.Errorf("unexpected error: %s", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrInvalidSpec) {
				t.Errorf("expected ErrInvalidSpec, got %+v", err)
			}
		})
	}
}

func TestExperiment_Equal(t *testing.T) {
	quota := 3
	base := domain.Experiment{
		Id: 1, Group: "mnist", Identifier: "cnn-v2",
		HyperParameters: domain.HyperParameters{"lr": 0.01},
		TrialQuota:      &quota,
		Metrics: []domain.Metric{
			{Id: 1, Name: "train_loss", Mode: domain.MetricMin},
			{Id: 2, Name: "val_acc", Mode: domain.MetricMax},
		},
	}

	t.Run("metric order does not matter", func(t *testing.T) {
		other := base
		other.Metrics = []domain.Metric{
			{Id: 2, Name: "val_acc", Mode: domain.MetricMax},
			{Id: 1, Name: "train_loss", Mode: domain.MetricMin},
		}
		if !base.Equal(other) {
			t.Error("they should be equal")
		}
	})

	t.Run("quota matters", func(t *testing.T) {
		other := base
		other.TrialQuota = nil
		if base.Equal(other) {
			t.Error("bounded and unbounded quotas should not be equal")
		}
	})

	t.Run("hyper parameter key order does not matter", func(t *testing.T) {
		a := base
		a.HyperParameters = domain.HyperParameters{"lr": 0.01, "seed": 42}
		b := base
		b.HyperParameters = domain.HyperParameters{"seed": 42, "lr": 0.01}
		if !a.Equal(b) {
			t.Error("they should be equal")
		}
	})
}
