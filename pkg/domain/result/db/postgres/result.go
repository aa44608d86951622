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
	"github.com/torii-ml/torii/pkg/domain/result/db"
)

type resultPG struct { // implements db.Interface
	pool kpool.Pool
}

func New(pool kpool.Pool) db.Interface {
	return &resultPG{pool: pool}
}

func (r *resultPG) Report(ctx context.Context, spec domain.ResultSpec) (domain.Result, error) {
	if err := spec.Validate(); err != nil {
		return domain.Result{}, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	defer tx.Rollback(ctx)

	var experimentId int
	if err := tx.QueryRow(
		ctx,
		`select "experiment_id" from "trial" where "id" = $1`,
		spec.TrialId,
	).Scan(&experimentId); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Result{}, kpgerr.Missing{
				Table: "trial", Identity: fmt.Sprintf("id = %d", spec.TrialId),
			}
		}
		return domain.Result{}, err
	}

	metric, err := kpgintr.GetOrCreateMetric(ctx, tx, spec.Metric)
	if err != nil {
		return domain.Result{}, err
	}

	// reporting against a trial also enrolls the metric into the
	// trial's experiment.
	if err := kpgintr.AttachMetric(ctx, tx, experimentId, metric.Id); err != nil {
		return domain.Result{}, err
	}

	resultId, err := r.getOrCreateResult(ctx, tx, spec.TrialId, metric.Id)
	if err != nil {
		return domain.Result{}, err
	}

	step := 0
	if spec.Step != nil {
		step = *spec.Step
	}
	if _, err := tx.Exec(
		ctx,
		`
		insert into "result_value" ("result_id", "step", "value")
		values ($1, $2, $3)
		on conflict ("result_id", "step") do update set "value" = excluded."value"
		`,
		resultId, step, spec.Value,
	); err != nil {
		return domain.Result{}, err
	}

	result := domain.Result{Id: resultId, TrialId: spec.TrialId, Metric: metric}
	result.Values, err = r.getValues(ctx, tx, resultId)
	if err != nil {
		return domain.Result{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Result{}, err
	}
	return result, nil
}

func (r *resultPG) getOrCreateResult(ctx context.Context, tx kpool.Tx, trialId int, metricId int) (int, error) {
	for {
		var id int
		err := tx.QueryRow(
			ctx,
			`
			with
			"old" as (
				select "id" from "result"
				where "trial_id" = $1 and "metric_id" = $2
				for update
			),
			"new" as (
				insert into "result" ("trial_id", "metric_id")
				values ($1, $2)
				on conflict ("trial_id", "metric_id") do nothing
				returning "id"
			)
			select "id" from "old"
			union all
			select "id" from "new"
			`,
			trialId, metricId,
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

func (r *resultPG) getValues(ctx context.Context, conn kpool.Queryer, resultId int) ([]domain.ResultValue, error) {
	rows, err := conn.Query(
		ctx,
		`
		select "id", "result_id", "step", "value" from "result_value"
		where "result_id" = $1
		order by "step"
		`,
		resultId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []domain.ResultValue{}
	for rows.Next() {
		v := domain.ResultValue{}
		if err := rows.Scan(&v.Id, &v.ResultId, &v.Step, &v.Value); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (r *resultPG) ListByTrial(ctx context.Context, trialId int) ([]domain.Result, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	trials, err := kpgintr.GetTrials(ctx, conn, []int{trialId})
	if err != nil {
		return nil, err
	}
	if _, ok := trials[trialId]; !ok {
		return nil, kpgerr.Missing{
			Table: "trial", Identity: fmt.Sprintf("id = %d", trialId),
		}
	}

	rows, err := conn.Query(
		ctx,
		`
		select "r"."id", "r"."trial_id", "m"."id", "m"."name", "m"."mode"
		from "result" as "r"
		inner join "metric" as "m" on "m"."id" = "r"."metric_id"
		where "r"."trial_id" = $1
		order by "m"."name"
		`,
		trialId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := r.scanResults(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	for i := range results {
		results[i].Values, err = r.getValues(ctx, conn, results[i].Id)
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (r *resultPG) scanResults(rows pgx.Rows) ([]domain.Result, error) {
	results := []domain.Result{}
	for rows.Next() {
		result := domain.Result{}
		var mode string
		if err := rows.Scan(
			&result.Id, &result.TrialId,
			&result.Metric.Id, &result.Metric.Name, &mode,
		); err != nil {
			return nil, err
		}
		parsed, err := domain.AsMetricMode(mode)
		if err != nil {
			return nil, err
		}
		result.Metric.Mode = parsed
		results = append(results, result)
	}
	return results, nil
}

func (r *resultPG) SeriesByExperiment(ctx context.Context, experimentId int) ([]domain.MetricSeries, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	experiments, err := kpgintr.GetExperiments(ctx, conn, []int{experimentId})
	if err != nil {
		return nil, err
	}
	if _, ok := experiments[experimentId]; !ok {
		return nil, kpgerr.Missing{
			Table: "experiment", Identity: fmt.Sprintf("id = %d", experimentId),
		}
	}

	rows, err := conn.Query(
		ctx,
		`
		select "r"."id", "r"."trial_id", "m"."id", "m"."name", "m"."mode"
		from "result" as "r"
		inner join "trial" as "t" on "t"."id" = "r"."trial_id"
		inner join "metric" as "m" on "m"."id" = "r"."metric_id"
		where "t"."experiment_id" = $1
		order by "m"."name", "r"."trial_id"
		`,
		experimentId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := r.scanResults(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	series := []domain.MetricSeries{}
	for _, result := range results {
		values, err := r.getValues(ctx, conn, result.Id)
		if err != nil {
			return nil, err
		}
		s := domain.MetricSeries{
			Metric:  result.Metric,
			TrialId: result.TrialId,
			Steps:   make([]int, 0, len(values)),
			Values:  make([]float64, 0, len(values)),
		}
		for _, v := range values {
			s.Steps = append(s.Steps, v.Step)
			s.Values = append(s.Values, v.Value)
		}
		series = append(series, s)
	}
	return series, nil
}
