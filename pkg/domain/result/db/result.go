package db

import (
	"context"

	"github.com/torii-ml/torii/pkg/domain"
)

type Interface interface {
	// record a value for (trial, metric, step).
	//
	// The metric is find-or-created and attached to the trial's
	// experiment. A missing step means step 0. Reporting an existing
	// (trial, metric, step) overwrites the stored value.
	//
	// # Returns
	//
	// - domain.Result: the result holding the reported value, with all
	// of its values at the time of the report.
	//
	// - error: ErrMissing when the trial does not exist,
	// domain.ModeInferenceError or domain.ModeConflictError from metric
	// resolution, or a validation error from the spec.
	Report(ctx context.Context, spec domain.ResultSpec) (domain.Result, error)

	// list results of a trial with their values, ordered by metric name.
	//
	// Values within a result are ordered by step.
	//
	// # Returns
	//
	// - []domain.Result
	//
	// - error: ErrMissing when the trial does not exist.
	ListByTrial(ctx context.Context, trialId int) ([]domain.Result, error)

	// collect per-trial metric series of an experiment.
	//
	// Series are ordered by metric name, then trial id; steps within a
	// series ascend.
	//
	// # Returns
	//
	// - []domain.MetricSeries
	//
	// - error: ErrMissing when the experiment does not exist.
	SeriesByExperiment(ctx context.Context, experimentId int) ([]domain.MetricSeries, error)
}
