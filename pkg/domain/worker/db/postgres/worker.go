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
	"github.com/torii-ml/torii/pkg/domain/worker/db"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

type workerPG struct { // implements db.Interface
	pool kpool.Pool
}

func New(pool kpool.Pool) db.Interface {
	return &workerPG{pool: pool}
}

func (w *workerPG) Register(ctx context.Context, spec domain.WorkerSpec) (domain.Worker, error) {
	if err := spec.Validate(); err != nil {
		return domain.Worker{}, err
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return domain.Worker{}, err
	}
	defer tx.Rollback(ctx)

	worker, err := w.register(ctx, tx, spec)
	if err != nil {
		return domain.Worker{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Worker{}, err
	}
	return worker, nil
}

func (w *workerPG) register(ctx context.Context, tx kpool.Tx, spec domain.WorkerSpec) (domain.Worker, error) {
	gpus, err := kpgintr.GPUsToJSONB(spec.GPUs)
	if err != nil {
		return domain.Worker{}, err
	}

	for {
		var id int
		err := tx.QueryRow(
			ctx,
			`select "id" from "worker" where "name" = $1 for update`,
			spec.Name,
		).Scan(&id)
		if err == nil {
			return w.getOne(ctx, tx, id)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Worker{}, err
		}

		err = tx.QueryRow(
			ctx,
			`
			insert into "worker" ("name", "cpu_brand", "memory", "gpus", "active")
			values ($1, $2, $3, $4, true)
			on conflict ("name") do nothing
			returning "id"
			`,
			spec.Name, spec.CpuBrand, spec.Memory, gpus,
		).Scan(&id)
		if err == nil {
			return w.getOne(ctx, tx, id)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Worker{}, err
		}
		// lost the insert race. retry as lookup.
	}
}

func (w *workerPG) getOne(ctx context.Context, conn kpool.Queryer, id int) (domain.Worker, error) {
	workers, err := kpgintr.GetWorkers(ctx, conn, []int{id})
	if err != nil {
		return domain.Worker{}, err
	}
	worker, ok := workers[id]
	if !ok {
		return domain.Worker{}, kpgerr.Missing{
			Table: "worker", Identity: fmt.Sprintf("id = %d", id),
		}
	}
	return worker, nil
}

func (w *workerPG) List(ctx context.Context) ([]domain.Worker, error) {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `select "id" from "worker" order by "id"`)
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
	rows.Close()

	workers, err := kpgintr.GetWorkers(ctx, conn, ids)
	if err != nil {
		return nil, err
	}
	return slices.Map(ids, func(id int) domain.Worker { return workers[id] }), nil
}

func (w *workerPG) Get(ctx context.Context, ids []int) (map[int]domain.Worker, error) {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()
	return kpgintr.GetWorkers(ctx, conn, ids)
}

func (w *workerPG) SetActive(ctx context.Context, name string, active bool) (domain.Worker, error) {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return domain.Worker{}, err
	}
	defer tx.Rollback(ctx)

	var id int
	if err := tx.QueryRow(
		ctx,
		`update "worker" set "active" = $1 where "name" = $2 returning "id"`,
		active, name,
	).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Worker{}, kpgerr.Missing{
				Table: "worker", Identity: fmt.Sprintf("name = %s", name),
			}
		}
		return domain.Worker{}, err
	}

	worker, err := w.getOne(ctx, tx, id)
	if err != nil {
		return domain.Worker{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Worker{}, err
	}
	return worker, nil
}
