package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	"github.com/torii-ml/torii/pkg/domain"
	kpgerr "github.com/torii-ml/torii/pkg/domain/errors/dberrors/postgres"
	kpgintr "github.com/torii-ml/torii/pkg/domain/internal/db/postgres"
	"github.com/torii-ml/torii/pkg/domain/trial/db"
	"github.com/torii-ml/torii/pkg/utils/logic"
)

type trialPG struct { // implements db.Interface
	pool kpool.Pool
}

func New(pool kpool.Pool) db.Interface {
	return &trialPG{pool: pool}
}

func (t *trialPG) Admit(ctx context.Context, workerId int, experimentId int) (domain.Trial, bool, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return domain.Trial{}, false, err
	}
	defer tx.Rollback(ctx)

	// lock the experiment row. concurrent admissions to the same
	// experiment serialize here, so the quota check below is stable.
	var quota *int
	if err := tx.QueryRow(
		ctx,
		`select "trial_quota" from "experiment" where "id" = $1 for update`,
		experimentId,
	).Scan(&quota); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trial{}, false, kpgerr.Missing{
				Table: "experiment", Identity: fmt.Sprintf("id = %d", experimentId),
			}
		}
		return domain.Trial{}, false, err
	}

	var workerExists bool
	if err := tx.QueryRow(
		ctx,
		`select exists (select 1 from "worker" where "id" = $1)`,
		workerId,
	).Scan(&workerExists); err != nil {
		return domain.Trial{}, false, err
	}
	if !workerExists {
		return domain.Trial{}, false, kpgerr.Missing{
			Table: "worker", Identity: fmt.Sprintf("id = %d", workerId),
		}
	}

	var occupied int
	if err := tx.QueryRow(
		ctx,
		`select count(*) from "trial" where "experiment_id" = $1`,
		experimentId,
	).Scan(&occupied); err != nil {
		return domain.Trial{}, false, err
	}

	trial := domain.Trial{WorkerId: workerId, ExperimentId: experimentId}
	if quota == nil || occupied < *quota {
		if err := tx.QueryRow(
			ctx,
			`
			insert into "trial" ("worker_id", "experiment_id")
			values ($1, $2)
			returning "id", "started_at", "complete"
			`,
			workerId, experimentId,
		).Scan(&trial.Id, &trial.StartedAt, &trial.Complete); err != nil {
			return domain.Trial{}, false, err
		}
	} else {
		// at quota. hand back the worker's oldest incomplete trial so a
		// restarted worker resumes instead of being turned away.
		err := tx.QueryRow(
			ctx,
			`
			select "id", "started_at", "complete" from "trial"
			where "worker_id" = $1 and "experiment_id" = $2 and not "complete"
			order by "id"
			limit 1
			`,
			workerId, experimentId,
		).Scan(&trial.Id, &trial.StartedAt, &trial.Complete)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trial{}, false, nil
		}
		if err != nil {
			return domain.Trial{}, false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trial{}, false, err
	}
	return trial, true, nil
}

func (t *trialPG) Complete(ctx context.Context, trialId int) (domain.Trial, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return domain.Trial{}, err
	}
	defer tx.Rollback(ctx)

	trial := domain.Trial{Id: trialId, Complete: true}
	if err := tx.QueryRow(
		ctx,
		`
		update "trial" set "complete" = true where "id" = $1
		returning "worker_id", "experiment_id", "started_at"
		`,
		trialId,
	).Scan(&trial.WorkerId, &trial.ExperimentId, &trial.StartedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trial{}, kpgerr.Missing{
				Table: "trial", Identity: fmt.Sprintf("id = %d", trialId),
			}
		}
		return domain.Trial{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trial{}, err
	}
	return trial, nil
}

func (t *trialPG) Get(ctx context.Context, ids []int) (map[int]domain.Trial, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()
	return kpgintr.GetTrials(ctx, conn, ids)
}

func (t *trialPG) Find(ctx context.Context, query domain.TrialFindQuery) ([]int, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select "id" from "trial"
		where ($1::int[] is null or "experiment_id" = any($1))
		  and ($2::int[] is null or "worker_id" = any($2))
		  and ($3::bool is null or "complete" = $3)
		order by "id"
		`,
		nullableIds(query.ExperimentId),
		nullableIds(query.WorkerId),
		nullableBool(query.Complete),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func nullableIds(ids []int) interface{} {
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func nullableBool(t logic.Ternary) interface{} {
	if !t.Applicable() {
		return nil
	}
	return t.Bool()
}
