package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	kpoolmock "github.com/torii-ml/torii/pkg/conn/db/postgres/pool/mock"
	"github.com/torii-ml/torii/pkg/domain"
	kpgerr "github.com/torii-ml/torii/pkg/domain/errors/dberrors/postgres"
	kpgtrial "github.com/torii-ml/torii/pkg/domain/trial/db/postgres"
	"github.com/torii-ml/torii/pkg/utils/pointer"
)

// script is what Admit may read from the experiment/worker/trial tables.
type admitScript struct {
	quota        interface{} // *int. nil pointer = unbounded
	workerExists bool
	occupied     int
	insert       kpoolmock.Row
	oldest       kpoolmock.Row

	experimentMissing bool
}

func scriptedTx(t *testing.T, s admitScript) *kpoolmock.Tx {
	t.Helper()
	tx := kpoolmock.NewTx()
	tx.Impl.QueryRow = func(ctx context.Context, sql string, args ...interface{}) pgx.Row {
		switch {
		case strings.Contains(sql, `select "trial_quota"`):
			if s.experimentMissing {
				return kpoolmock.ErrNoRows()
			}
			return kpoolmock.Row{Values: []interface{}{s.quota}}
		case strings.Contains(sql, "select exists"):
			return kpoolmock.Row{Values: []interface{}{s.workerExists}}
		case strings.Contains(sql, "count(*)"):
			return kpoolmock.Row{Values: []interface{}{s.occupied}}
		case strings.Contains(sql, `insert into "trial"`):
			return s.insert
		case strings.Contains(sql, `not "complete"`):
			return s.oldest
		}
		t.Errorf("unexpected query: %s", sql)
		return kpoolmock.ErrNoRows()
	}
	return tx
}

func poolOf(tx *kpoolmock.Tx) *kpoolmock.Pool {
	pool := kpoolmock.NewPool()
	pool.Impl.Begin = func(ctx context.Context) (kpool.Tx, error) { return tx, nil }
	return pool
}

func queriedSQLs(tx *kpoolmock.Tx) []string {
	sqls := []string{}
	for _, call := range tx.Calls.QueryRow {
		sqls = append(sqls, call.SQL)
	}
	return sqls
}

func TestTrialPG_Admit(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2026, 3, 10, 12, 34, 56, 0, time.UTC)

	t.Run("it inserts a new trial while the quota has room", func(t *testing.T) {
		tx := scriptedTx(t, admitScript{
			quota: pointer.Ref(3), workerExists: true, occupied: 2,
			insert: kpoolmock.Row{Values: []interface{}{100, startedAt, false}},
		})
		testee := kpgtrial.New(poolOf(tx))

		trial, admitted, err := testee.Admit(ctx, 3, 7)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !admitted {
			t.Error("it should be admitted")
		}
		expected := domain.Trial{
			Id: 100, WorkerId: 3, ExperimentId: 7,
			StartedAt: startedAt, Complete: false,
		}
		if !trial.Equal(expected) {
			t.Errorf("unmatch trial:\n- actual   : %+v\n- expected : %+v", trial, expected)
		}
		if tx.Calls.Commit != 1 {
			t.Errorf("commit is called %d times (expected: 1)", tx.Calls.Commit)
		}
	})

	t.Run("it treats a null quota as unbounded", func(t *testing.T) {
		tx := scriptedTx(t, admitScript{
			quota: (*int)(nil), workerExists: true, occupied: 1000,
			insert: kpoolmock.Row{Values: []interface{}{1001, startedAt, false}},
		})
		testee := kpgtrial.New(poolOf(tx))

		trial, admitted, err := testee.Admit(ctx, 3, 7)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !admitted || trial.Id != 1001 {
			t.Errorf("unmatch: admitted = %v, trial = %+v", admitted, trial)
		}
	})

	t.Run("at quota, it hands back the worker's oldest incomplete trial", func(t *testing.T) {
		tx := scriptedTx(t, admitScript{
			quota: pointer.Ref(2), workerExists: true, occupied: 2,
			oldest: kpoolmock.Row{Values: []interface{}{55, startedAt, false}},
		})
		testee := kpgtrial.New(poolOf(tx))

		trial, admitted, err := testee.Admit(ctx, 3, 7)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !admitted {
			t.Error("it should be admitted")
		}
		expected := domain.Trial{
			Id: 55, WorkerId: 3, ExperimentId: 7,
			StartedAt: startedAt, Complete: false,
		}
		if !trial.Equal(expected) {
			t.Errorf("unmatch trial:\n- actual   : %+v\n- expected : %+v", trial, expected)
		}
		for _, sql := range queriedSQLs(tx) {
			if strings.Contains(sql, `insert into "trial"`) {
				t.Error("it should not insert a new trial at quota")
			}
		}
	})

	t.Run("when the quota is exhausted, it does not admit", func(t *testing.T) {
		tx := scriptedTx(t, admitScript{
			quota: pointer.Ref(1), workerExists: true, occupied: 1,
			oldest: kpoolmock.ErrNoRows(),
		})
		testee := kpgtrial.New(poolOf(tx))

		trial, admitted, err := testee.Admit(ctx, 3, 7)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if admitted {
			t.Error("it should not be admitted")
		}
		if !trial.Equal(domain.Trial{}) {
			t.Errorf("unexpected trial: %+v", trial)
		}
		if tx.Calls.Commit != 0 {
			t.Errorf("commit is called %d times (expected: 0)", tx.Calls.Commit)
		}
	})

	t.Run("when the experiment is missing, it errors as missing", func(t *testing.T) {
		tx := scriptedTx(t, admitScript{experimentMissing: true})
		testee := kpgtrial.New(poolOf(tx))

		_, _, err := testee.Admit(ctx, 3, 7)
		missing := kpgerr.Missing{}
		if !errors.As(err, &missing) || missing.Table != "experiment" {
			t.Errorf("unexpected error: %+v", err)
		}
	})

	t.Run("when the worker is missing, it errors as missing", func(t *testing.T) {
		tx := scriptedTx(t, admitScript{
			quota: pointer.Ref(1), workerExists: false,
		})
		testee := kpgtrial.New(poolOf(tx))

		_, _, err := testee.Admit(ctx, 3, 7)
		missing := kpgerr.Missing{}
		if !errors.As(err, &missing) || missing.Table != "worker" {
			t.Errorf("unexpected error: %+v", err)
		}
	})
}

func TestTrialPG_Complete(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2026, 3, 10, 12, 34, 56, 0, time.UTC)

	t.Run("it marks the trial complete", func(t *testing.T) {
		tx := kpoolmock.NewTx()
		tx.Impl.QueryRow = func(ctx context.Context, sql string, args ...interface{}) pgx.Row {
			if !strings.Contains(sql, `update "trial" set "complete" = true`) {
				t.Errorf("unexpected query: %s", sql)
			}
			return kpoolmock.Row{Values: []interface{}{3, 7, startedAt}}
		}
		testee := kpgtrial.New(poolOf(tx))

		trial, err := testee.Complete(ctx, 42)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := domain.Trial{
			Id: 42, WorkerId: 3, ExperimentId: 7,
			StartedAt: startedAt, Complete: true,
		}
		if !trial.Equal(expected) {
			t.Errorf("unmatch trial:\n- actual   : %+v\n- expected : %+v", trial, expected)
		}
		if tx.Calls.Commit != 1 {
			t.Errorf("commit is called %d times (expected: 1)", tx.Calls.Commit)
		}
	})

	t.Run("when the trial is missing, it errors as missing", func(t *testing.T) {
		tx := kpoolmock.NewTx()
		tx.Impl.QueryRow = func(ctx context.Context, sql string, args ...interface{}) pgx.Row {
			return kpoolmock.ErrNoRows()
		}
		testee := kpgtrial.New(poolOf(tx))

		_, err := testee.Complete(ctx, 42)
		missing := kpgerr.Missing{}
		if !errors.As(err, &missing) || missing.Table != "trial" {
			t.Errorf("unexpected error: %+v", err)
		}
	})
}
