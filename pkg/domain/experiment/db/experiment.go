package db

import (
	"context"

	"github.com/torii-ml/torii/pkg/domain"
)

type Interface interface {
	// find-or-create an Experiment.
	//
	// Identity is the triple (group, identifier, hyper-parameters),
	// where hyper-parameters are compared by their canonical JSON form.
	//
	// Metrics named in the spec are find-or-created and attached to the
	// experiment; the attached set only ever grows. When the spec
	// carries a trial quota it overwrites the stored one, otherwise the
	// stored quota is kept (new experiments default to 1).
	//
	// # Returns
	//
	// - domain.Experiment: the merged experiment, metrics included.
	//
	// - error: domain.ModeInferenceError or domain.ModeConflictError
	// from metric resolution, or a validation error from the spec.
	GetOrCreate(ctx context.Context, spec domain.ExperimentSpec) (domain.Experiment, error)

	// retrieve experiments by ids, metric sets included.
	//
	// Ids which do not exist are simply omitted from the result.
	Get(ctx context.Context, ids []int) (map[int]domain.Experiment, error)

	// find ids of experiments matching the query, ordered by id.
	//
	// Empty query fields match everything.
	Find(ctx context.Context, query domain.ExperimentFindQuery) ([]int, error)
}
