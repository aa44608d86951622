package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	"github.com/torii-ml/torii/pkg/domain"
	kpgerr "github.com/torii-ml/torii/pkg/domain/errors/dberrors/postgres"
	"github.com/torii-ml/torii/pkg/domain/experiment/db"
	kpgintr "github.com/torii-ml/torii/pkg/domain/internal/db/postgres"
)

type experimentPG struct { // implements db.Interface
	pool kpool.Pool
}

func New(pool kpool.Pool) db.Interface {
	return &experimentPG{pool: pool}
}

func (e *experimentPG) GetOrCreate(ctx context.Context, spec domain.ExperimentSpec) (domain.Experiment, error) {
	if err := spec.Validate(); err != nil {
		return domain.Experiment{}, err
	}

	tx, err := e.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return domain.Experiment{}, err
	}
	defer tx.Rollback(ctx)

	// resolve metrics first, so a mode conflict aborts before the
	// experiment is touched.
	metricIds := make([]int, 0, len(spec.Metrics))
	for _, req := range spec.Metrics {
		metric, err := kpgintr.GetOrCreateMetric(ctx, tx, req)
		if err != nil {
			return domain.Experiment{}, err
		}
		metricIds = append(metricIds, metric.Id)
	}

	id, err := e.getOrCreateBody(ctx, tx, spec)
	if err != nil {
		return domain.Experiment{}, err
	}

	for _, metricId := range metricIds {
		if err := kpgintr.AttachMetric(ctx, tx, id, metricId); err != nil {
			return domain.Experiment{}, err
		}
	}

	experiments, err := kpgintr.GetExperiments(ctx, tx, []int{id})
	if err != nil {
		return domain.Experiment{}, err
	}
	experiment, ok := experiments[id]
	if !ok {
		return domain.Experiment{}, kpgerr.Missing{
			Table: "experiment", Identity: fmt.Sprintf("id = %d", id),
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Experiment{}, err
	}
	return experiment, nil
}

func (e *experimentPG) getOrCreateBody(ctx context.Context, tx kpool.Tx, spec domain.ExperimentSpec) (int, error) {
	canonical, err := spec.HyperParameters.Canonical()
	if err != nil {
		return 0, err
	}

	for {
		var id int
		err := tx.QueryRow(
			ctx,
			`
			select "id" from "experiment"
			where "group_name" = $1 and "identifier" = $2 and "hyper_parameters" = $3
			for update
			`,
			spec.Group, spec.Identifier, canonical,
		).Scan(&id)
		if err == nil {
			if spec.TrialQuota != nil {
				if _, err := tx.Exec(
					ctx,
					`update "experiment" set "trial_quota" = $1 where "id" = $2`,
					*spec.TrialQuota, id,
				); err != nil {
					return 0, err
				}
			}
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}

		quota := 1
		if spec.TrialQuota != nil {
			quota = *spec.TrialQuota
		}
		err = tx.QueryRow(
			ctx,
			`
			insert into "experiment" ("group_name", "identifier", "hyper_parameters", "trial_quota")
			values ($1, $2, $3, $4)
			on conflict ("group_name", "identifier", "hyper_parameters") do nothing
			returning "id"
			`,
			spec.Group, spec.Identifier, canonical, quota,
		).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}
		// lost the insert race. retry as lookup.
	}
}

func (e *experimentPG) Get(ctx context.Context, ids []int) (map[int]domain.Experiment, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()
	return kpgintr.GetExperiments(ctx, conn, ids)
}

func (e *experimentPG) Find(ctx context.Context, query domain.ExperimentFindQuery) ([]int, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select "id" from "experiment"
		where ($1 = '' or "group_name" = $1)
		  and ($2 = '' or "identifier" = $2)
		order by "id"
		`,
		query.Group, query.Identifier,
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
