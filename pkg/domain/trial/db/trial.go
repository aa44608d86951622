package db

import (
	"context"

	"github.com/torii-ml/torii/pkg/domain"
)

type Interface interface {
	// admit a worker into an experiment.
	//
	// While the experiment has room under its trial quota (counting
	// complete and incomplete trials alike; a null quota is unbounded),
	// a fresh trial is started. At quota, the worker's oldest
	// incomplete trial on the experiment is handed back instead, so a
	// restarted worker can resume where it left off.
	//
	// # Returns
	//
	// - domain.Trial: the admitted trial. Zero when not admitted.
	//
	// - bool: false when the quota is reached and the worker has no
	// incomplete trial to resume. This is an outcome, not an error.
	//
	// - error: ErrMissing when the worker or the experiment does not
	// exist.
	Admit(ctx context.Context, workerId int, experimentId int) (domain.Trial, bool, error)

	// mark the trial complete.
	//
	// Completion is one-way. Completing an already complete trial is a
	// no-op.
	//
	// # Returns
	//
	// - domain.Trial: the trial after the update.
	//
	// - error: ErrMissing when no trial has the id.
	Complete(ctx context.Context, trialId int) (domain.Trial, error)

	// retrieve trials by ids.
	//
	// Ids which do not exist are simply omitted from the result.
	Get(ctx context.Context, ids []int) (map[int]domain.Trial, error)

	// find ids of trials matching the query, ordered by id.
	Find(ctx context.Context, query domain.TrialFindQuery) ([]int, error)
}
