package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	"github.com/torii-ml/torii/pkg/domain"
)

// GPUsToJSONB packs the GPU descriptor for the "gpus" jsonb column.
// The stored shape is the same object scanWorker unmarshals.
func GPUsToJSONB(gpus domain.GPUDescriptor) (pgtype.JSONB, error) {
	if gpus.GPUs == nil {
		gpus.GPUs = []domain.GPU{}
	}
	b, err := json.Marshal(gpus)
	if err != nil {
		return pgtype.JSONB{Status: pgtype.Null}, err
	}
	return pgtype.JSONB{Bytes: b, Status: pgtype.Present}, nil
}

func scanWorker(rows pgx.Rows) (domain.Worker, error) {
	worker := domain.Worker{}
	var gpus pgtype.JSONB
	if err := rows.Scan(
		&worker.Id, &worker.Name, &worker.CreatedAt, &worker.Active,
		&worker.CpuBrand, &worker.Memory, &gpus,
	); err != nil {
		return domain.Worker{}, err
	}
	if gpus.Status == pgtype.Present {
		if err := json.Unmarshal(gpus.Bytes, &worker.GPUs); err != nil {
			return domain.Worker{}, err
		}
	}
	return worker, nil
}

// GetWorkers retrieves workers by ids. Unknown ids are omitted.
func GetWorkers(ctx context.Context, conn kpool.Queryer, ids []int) (map[int]domain.Worker, error) {
	rows, err := conn.Query(
		ctx,
		`
		select "id", "name", "created_at", "active", "cpu_brand", "memory", "gpus"
		from "worker" where "id" = any($1)
		`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := map[int]domain.Worker{}
	for rows.Next() {
		worker, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		result[worker.Id] = worker
	}
	return result, nil
}
