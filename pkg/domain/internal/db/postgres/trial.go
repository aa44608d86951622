package postgres

import (
	"context"

	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	"github.com/torii-ml/torii/pkg/domain"
)

// GetTrials retrieves trials by ids. Unknown ids are omitted.
func GetTrials(ctx context.Context, conn kpool.Queryer, ids []int) (map[int]domain.Trial, error) {
	rows, err := conn.Query(
		ctx,
		`
		select "id", "worker_id", "experiment_id", "started_at", "complete"
		from "trial" where "id" = any($1)
		`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := map[int]domain.Trial{}
	for rows.Next() {
		trial := domain.Trial{}
		if err := rows.Scan(
			&trial.Id, &trial.WorkerId, &trial.ExperimentId,
			&trial.StartedAt, &trial.Complete,
		); err != nil {
			return nil, err
		}
		result[trial.Id] = trial
	}
	return result, nil
}
