package postgres

import (
	"context"
	"encoding/json"

	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	"github.com/torii-ml/torii/pkg/domain"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

// GetExperiments retrieves experiments by ids, metric sets included.
// Unknown ids are omitted.
func GetExperiments(ctx context.Context, conn kpool.Queryer, ids []int) (map[int]domain.Experiment, error) {
	rows, err := conn.Query(
		ctx,
		`
		select "id", "group_name", "identifier", "hyper_parameters", "trial_quota"
		from "experiment" where "id" = any($1)
		`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := map[int]domain.Experiment{}
	for rows.Next() {
		exp := domain.Experiment{}
		var hp string
		if err := rows.Scan(
			&exp.Id, &exp.Group, &exp.Identifier, &hp, &exp.TrialQuota,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(hp), &exp.HyperParameters); err != nil {
			return nil, err
		}
		exp.Metrics = []domain.Metric{}
		result[exp.Id] = exp
	}
	rows.Close()

	mrows, err := conn.Query(
		ctx,
		`
		select "em"."experiment_id", "m"."id", "m"."name", "m"."mode"
		from "experiment_metric" as "em"
		inner join "metric" as "m" on "m"."id" = "em"."metric_id"
		where "em"."experiment_id" = any($1)
		order by "m"."name"
		`,
		slices.KeysOf(result),
	)
	if err != nil {
		return nil, err
	}
	defer mrows.Close()

	for mrows.Next() {
		var experimentId int
		metric := domain.Metric{}
		var mode pgMetricMode
		if err := mrows.Scan(&experimentId, &metric.Id, &metric.Name, &mode); err != nil {
			return nil, err
		}
		metric.Mode = domain.MetricMode(mode)
		exp := result[experimentId]
		exp.Metrics = append(exp.Metrics, metric)
		result[experimentId] = exp
	}
	return result, nil
}

// AttachMetric links a metric to an experiment. Linking twice is a no-op;
// the metric set of an experiment only grows.
func AttachMetric(ctx context.Context, tx kpool.Tx, experimentId int, metricId int) error {
	_, err := tx.Exec(
		ctx,
		`
		insert into "experiment_metric" ("experiment_id", "metric_id")
		values ($1, $2)
		on conflict ("experiment_id", "metric_id") do nothing
		`,
		experimentId, metricId,
	)
	return err
}
