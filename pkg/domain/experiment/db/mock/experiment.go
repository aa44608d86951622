package mock

import (
	"context"
	"errors"

	"github.com/torii-ml/torii/pkg/domain"
	kdb "github.com/torii-ml/torii/pkg/domain/experiment/db"
	dbmock "github.com/torii-ml/torii/pkg/domain/internal/db/mock"
)

type ExperimentInterface struct {
	Impl struct {
		GetOrCreate func(ctx context.Context, spec domain.ExperimentSpec) (domain.Experiment, error)
		Get         func(ctx context.Context, ids []int) (map[int]domain.Experiment, error)
		Find        func(ctx context.Context, query domain.ExperimentFindQuery) ([]int, error)
	}

	Calls struct {
		GetOrCreate dbmock.CallLog[domain.ExperimentSpec]
		Get         dbmock.CallLog[[]int]
		Find        dbmock.CallLog[domain.ExperimentFindQuery]
	}
}

func NewExperimentInterface() *ExperimentInterface {
	return &ExperimentInterface{}
}

var _ kdb.Interface = &ExperimentInterface{}

func (m *ExperimentInterface) GetOrCreate(ctx context.Context, spec domain.ExperimentSpec) (domain.Experiment, error) {
	m.Calls.GetOrCreate = append(m.Calls.GetOrCreate, spec)
	if m.Impl.GetOrCreate != nil {
		return m.Impl.GetOrCreate(ctx, spec)
	}

	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) Get(ctx context.Context, ids []int) (map[int]domain.Experiment, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}

	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) Find(ctx context.Context, query domain.ExperimentFindQuery) ([]int, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}

	panic(errors.New("it should not be called"))
}
