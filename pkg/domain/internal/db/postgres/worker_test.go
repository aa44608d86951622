package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kpoolmock "github.com/torii-ml/torii/pkg/conn/db/postgres/pool/mock"
	"github.com/torii-ml/torii/pkg/domain"
	kpgintr "github.com/torii-ml/torii/pkg/domain/internal/db/postgres"
)

func TestGPUsToJSONB(t *testing.T) {
	t.Run("the packed descriptor unpacks to itself", func(t *testing.T) {
		descriptor := domain.GPUDescriptor{
			GPUs: []domain.GPU{
				{Name: "A100", Memory: 80},
				{Name: "A100", Memory: 80},
			},
		}

		packed, err := kpgintr.GPUsToJSONB(descriptor)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if packed.Status != pgtype.Present {
			t.Fatalf("unexpected status: %v", packed.Status)
		}

		unpacked := domain.GPUDescriptor{}
		if err := json.Unmarshal(packed.Bytes, &unpacked); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !unpacked.Equal(descriptor) {
			t.Errorf(
				"unmatch descriptor:\n- actual   : %+v\n- expected : %+v",
				unpacked, descriptor,
			)
		}
	})

	t.Run("a descriptor without GPUs packs to an empty list", func(t *testing.T) {
		packed, err := kpgintr.GPUsToJSONB(domain.GPUDescriptor{})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if string(packed.Bytes) != `{"gpus":[]}` {
			t.Errorf("unmatch jsonb: %s", string(packed.Bytes))
		}

		unpacked := domain.GPUDescriptor{}
		if err := json.Unmarshal(packed.Bytes, &unpacked); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(unpacked.GPUs) != 0 {
			t.Errorf("unexpected GPUs: %+v", unpacked.GPUs)
		}
	})
}

func TestGetWorkers(t *testing.T) {
	t.Run("it reads back the gpus column written by GPUsToJSONB", func(t *testing.T) {
		descriptor := domain.GPUDescriptor{
			GPUs: []domain.GPU{{Name: "H100", Memory: 96}},
		}
		packed, err := kpgintr.GPUsToJSONB(descriptor)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		createdAt := time.Date(2026, 3, 10, 12, 34, 56, 0, time.UTC)
		conn := kpoolmock.NewConn()
		conn.Impl.Query = func(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
			return &kpoolmock.Rows{Records: [][]interface{}{
				{3, "node-a", createdAt, true, "amd64", 256.0, packed.Bytes},
			}}, nil
		}

		workers, err := kpgintr.GetWorkers(context.Background(), conn, []int{3})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := domain.Worker{
			Id: 3, Name: "node-a", CreatedAt: createdAt, Active: true,
			CpuBrand: "amd64", Memory: 256, GPUs: descriptor,
		}
		if actual, ok := workers[3]; !ok || !actual.Equal(expected) {
			t.Errorf(
				"unmatch worker:\n- actual   : %+v\n- expected : %+v",
				actual, expected,
			)
		}
	})
}
