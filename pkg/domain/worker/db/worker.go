package db

import (
	"context"

	"github.com/torii-ml/torii/pkg/domain"
)

type Interface interface {
	// find-or-create a Worker keyed by name.
	//
	// When no worker has the name, a new one is registered with the
	// given descriptors and active = true. When one exists already, it
	// is returned unchanged; descriptors in the spec are ignored.
	//
	// # Args
	//
	// - context.Context
	//
	// - domain.WorkerSpec: name and static host descriptors.
	//
	// # Returns
	//
	// - domain.Worker: the (possibly pre-existing) worker.
	//
	// - error
	Register(ctx context.Context, spec domain.WorkerSpec) (domain.Worker, error)

	// list all registered workers, ordered by id.
	List(ctx context.Context) ([]domain.Worker, error)

	// retrieve workers by ids.
	//
	// Ids which do not exist are simply omitted from the result.
	Get(ctx context.Context, ids []int) (map[int]domain.Worker, error)

	// update the active flag of the named worker.
	//
	// # Returns
	//
	// - domain.Worker: the updated worker.
	//
	// - error: ErrMissing when no worker has the name.
	SetActive(ctx context.Context, name string, active bool) (domain.Worker, error)
}
