package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	"github.com/torii-ml/torii/pkg/domain"
)

type pgMetricMode domain.MetricMode

func (m pgMetricMode) String() string {
	return string(m)
}

func (m pgMetricMode) Value() (interface{}, error) {
	return string(m), nil
}

func (m *pgMetricMode) Scan(src interface{}) error {
	expr, ok := src.(string)
	if !ok {
		return fmt.Errorf("MetricMode: unexpected type: %T", src)
	}
	parsed, err := domain.AsMetricMode(expr)
	if err != nil {
		return err
	}
	*m = pgMetricMode(parsed)
	return nil
}

// GetOrCreateMetric finds or creates the metric named in req, inside the
// passed transaction.
//
// The found or created row is locked for update, so the caller can attach
// it to other records without it changing underfoot.
func GetOrCreateMetric(ctx context.Context, tx kpool.Tx, req domain.MetricRequest) (domain.Metric, error) {
	for {
		metric := domain.Metric{Name: req.Name}
		var mode pgMetricMode
		err := tx.QueryRow(
			ctx,
			`select "id", "mode" from "metric" where "name" = $1 for update`,
			req.Name,
		).Scan(&metric.Id, &mode)
		if err == nil {
			metric.Mode = domain.MetricMode(mode)
			if explicit, ok := req.Mode.Explicit(); ok && explicit != metric.Mode {
				return domain.Metric{}, domain.ModeConflictError{
					Name: req.Name, Stored: metric.Mode, Requested: explicit,
				}
			}
			return metric, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Metric{}, err
		}

		newMode, ok := req.Mode.Explicit()
		if !ok {
			inferred, err := domain.InferMode(req.Name)
			if err != nil {
				return domain.Metric{}, err
			}
			newMode = inferred
		}

		err = tx.QueryRow(
			ctx,
			`
			insert into "metric" ("name", "mode") values ($1, $2::metricMode)
			on conflict ("name") do nothing
			returning "id"
			`,
			req.Name, pgMetricMode(newMode),
		).Scan(&metric.Id)
		if err == nil {
			metric.Mode = newMode
			return metric, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Metric{}, err
		}
		// lost the insert race. retry as lookup.
	}
}

// GetMetrics retrieves metrics by ids. Unknown ids are omitted.
func GetMetrics(ctx context.Context, conn kpool.Queryer, ids []int) (map[int]domain.Metric, error) {
	rows, err := conn.Query(
		ctx,
		`select "id", "name", "mode" from "metric" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := map[int]domain.Metric{}
	for rows.Next() {
		metric := domain.Metric{}
		var mode pgMetricMode
		if err := rows.Scan(&metric.Id, &metric.Name, &mode); err != nil {
			return nil, err
		}
		metric.Mode = domain.MetricMode(mode)
		result[metric.Id] = metric
	}
	return result, nil
}
