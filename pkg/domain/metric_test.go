package domain_test

import (
	"errors"
	"testing"

	"github.com/torii-ml/torii/pkg/domain"
)

func TestInferMode(t *testing.T) {
	for name, testcase := range map[string]struct {
		name     string
		expected domain.MetricMode
	}{
		"a name containing acc is maximized":       {name: "val_acc", expected: domain.MetricMax},
		"a name being exactly acc is maximized":    {name: "acc", expected: domain.MetricMax},
		"accuracy is maximized":                    {name: "accuracy", expected: domain.MetricMax},
		"a name containing loss is minimized":      {name: "train_loss", expected: domain.MetricMin},
		"a name being exactly loss is minimized":   {name: "loss", expected: domain.MetricMin},
		"a name ending with loss is minimized too": {name: "cross_entropy_loss", expected: domain.MetricMin},
	} {
		t.Run(name, func(t *testing.T) {
			actual, err := domain.InferMode(testcase.name)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if actual != testcase.expected {
				t.Errorf("mode of %s: got %s, expected %s", testcase.name, actual, testcase.expected)
			}
		})
	}

	t.Run("a name with no known stem cannot be inferred", func(t *testing.T) {
		_, err := domain.InferMode("f1_score")
		if !errors.Is(err, domain.ErrModeInference) {
			t.Errorf("expected ErrModeInference, got %+v", err)
		}
		mierr := domain.ModeInferenceError{}
		if !errors.As(err, &mierr) {
			t.Fatalf("expected ModeInferenceError, got %+v", err)
		}
		if mierr.Name != "f1_score" {
			t.Errorf("error does not carry the metric name: %+v", mierr)
		}
	})
}

func TestParseModeRequest(t *testing.T) {
	t.Run("empty expression is auto", func(t *testing.T) {
		req, err := domain.ParseModeRequest("")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, ok := req.Explicit(); ok {
			t.Errorf("expected auto, got explicit %s", req)
		}
	})

	t.Run("auto is auto", func(t *testing.T) {
		req, err := domain.ParseModeRequest("auto")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, ok := req.Explicit(); ok {
			t.Errorf("expected auto, got explicit %s", req)
		}
	})

	for _, expr := range []string{"max", "min"} {
		t.Run(expr+" is explicit", func(t *testing.T) {
			req, err := domain.ParseModeRequest(expr)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			mode, ok := req.Explicit()
			if !ok {
				t.Fatalf("expected explicit, got %s", req)
			}
			if mode.String() != expr {
				t.Errorf("got %s, expected %s", mode, expr)
			}
		})
	}

	t.Run("unknown expressions are rejected", func(t *testing.T) {
		if _, err := domain.ParseModeRequest("sideways"); err == nil {
			t.Error("expected an error, got nil")
		}
	})
}

func TestAsMetricMode(t *testing.T) {
	if mode, err := domain.AsMetricMode("max"); err != nil || mode != domain.MetricMax {
		t.Errorf("max: got (%s, %v)", mode, err)
	}
	if mode, err := domain.AsMetricMode("min"); err != nil || mode != domain.MetricMin {
		t.Errorf("min: got (%s, %v)", mode, err)
	}
	if _, err := domain.AsMetricMode("auto"); err == nil {
		t.Error("auto is not a MetricMode; expected an error")
	}
	if _, err := domain.AsMetricMode(""); err == nil {
		t.Error("empty string is not a MetricMode; expected an error")
	}
}

func TestModeConflictError(t *testing.T) {
	err := domain.ModeConflictError{
		Name: "val_acc", Requested: domain.MetricMin, Stored: domain.MetricMax,
	}
	if !errors.Is(err, domain.ErrModeConflict) {
		t.Error("ModeConflictError should unwrap to ErrModeConflict")
	}
}
