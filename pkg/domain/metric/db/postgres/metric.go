package postgres

import (
	"context"

	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	"github.com/torii-ml/torii/pkg/domain"
	kpgintr "github.com/torii-ml/torii/pkg/domain/internal/db/postgres"
	"github.com/torii-ml/torii/pkg/domain/metric/db"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

type metricPG struct { // implements db.Interface
	pool kpool.Pool
}

func New(pool kpool.Pool) db.Interface {
	return &metricPG{pool: pool}
}

func (m *metricPG) GetOrCreate(ctx context.Context, req domain.MetricRequest) (domain.Metric, error) {
	if req.Name == "" {
		return domain.Metric{}, domain.NewInvalidSpec("metric name is required")
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Metric{}, err
	}
	defer tx.Rollback(ctx)

	metric, err := kpgintr.GetOrCreateMetric(ctx, tx, req)
	if err != nil {
		return domain.Metric{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Metric{}, err
	}
	return metric, nil
}

func (m *metricPG) Get(ctx context.Context, ids []int) (map[int]domain.Metric, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()
	return kpgintr.GetMetrics(ctx, conn, ids)
}

func (m *metricPG) List(ctx context.Context) ([]domain.Metric, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `select "id" from "metric" order by "name"`)
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

	metrics, err := kpgintr.GetMetrics(ctx, conn, ids)
	if err != nil {
		return nil, err
	}
	return slices.Map(ids, func(id int) domain.Metric { return metrics[id] }), nil
}
