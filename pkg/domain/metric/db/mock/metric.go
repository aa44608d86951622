package mock

import (
	"context"
	"errors"

	"github.com/torii-ml/torii/pkg/domain"
	dbmock "github.com/torii-ml/torii/pkg/domain/internal/db/mock"
	kdb "github.com/torii-ml/torii/pkg/domain/metric/db"
)

type MetricInterface struct {
	Impl struct {
		GetOrCreate func(ctx context.Context, req domain.MetricRequest) (domain.Metric, error)
		Get         func(ctx context.Context, ids []int) (map[int]domain.Metric, error)
		List        func(ctx context.Context) ([]domain.Metric, error)
	}

	Calls struct {
		GetOrCreate dbmock.CallLog[domain.MetricRequest]
		Get         dbmock.CallLog[[]int]
		List        dbmock.CallLog[struct{}]
	}
}

func NewMetricInterface() *MetricInterface {
	return &MetricInterface{}
}

var _ kdb.Interface = &MetricInterface{}

func (m *MetricInterface) GetOrCreate(ctx context.Context, req domain.MetricRequest) (domain.Metric, error) {
	m.Calls.GetOrCreate = append(m.Calls.GetOrCreate, req)
	if m.Impl.GetOrCreate != nil {
		return m.Impl.GetOrCreate(ctx, req)
	}

	panic(errors.New("it should not be called"))
}

func (m *MetricInterface) Get(ctx context.Context, ids []int) (map[int]domain.Metric, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}

	panic(errors.New("it should not be called"))
}

func (m *MetricInterface) List(ctx context.Context) ([]domain.Metric, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List != nil {
		return m.Impl.List(ctx)
	}

	panic(errors.New("it should not be called"))
}
