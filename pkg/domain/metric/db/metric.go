package db

import (
	"context"

	"github.com/torii-ml/torii/pkg/domain"
)

type Interface interface {
	// find-or-create a Metric keyed by name.
	//
	// When the request leaves the mode to be determined, it is inferred
	// from the name ("acc" means max, "loss" means min).
	//
	// # Returns
	//
	// - domain.Metric
	//
	// - error: domain.ModeInferenceError when the mode cannot be
	// inferred, or domain.ModeConflictError when an explicit mode
	// disagrees with the stored one.
	GetOrCreate(ctx context.Context, req domain.MetricRequest) (domain.Metric, error)

	// retrieve metrics by ids.
	//
	// Ids which do not exist are simply omitted from the result.
	Get(ctx context.Context, ids []int) (map[int]domain.Metric, error)

	// list all registered metrics, ordered by name.
	List(ctx context.Context) ([]domain.Metric, error)
}
