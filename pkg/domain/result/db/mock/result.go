package mock

import (
	"context"
	"errors"

	"github.com/torii-ml/torii/pkg/domain"
	dbmock "github.com/torii-ml/torii/pkg/domain/internal/db/mock"
	kdb "github.com/torii-ml/torii/pkg/domain/result/db"
)

type ResultInterface struct {
	Impl struct {
		Report             func(ctx context.Context, spec domain.ResultSpec) (domain.Result, error)
		ListByTrial        func(ctx context.Context, trialId int) ([]domain.Result, error)
		SeriesByExperiment func(ctx context.Context, experimentId int) ([]domain.MetricSeries, error)
	}

	Calls struct {
		Report             dbmock.CallLog[domain.ResultSpec]
		ListByTrial        dbmock.CallLog[int]
		SeriesByExperiment dbmock.CallLog[int]
	}
}

func NewResultInterface() *ResultInterface {
	return &ResultInterface{}
}

var _ kdb.Interface = &ResultInterface{}

func (m *ResultInterface) Report(ctx context.Context, spec domain.ResultSpec) (domain.Result, error) {
	m.Calls.Report = append(m.Calls.Report, spec)
	if m.Impl.Report != nil {
		return m.Impl.Report(ctx, spec)
	}

	panic(errors.New("it should not be called"))
}

func (m *ResultInterface) ListByTrial(ctx context.Context, trialId int) ([]domain.Result, error) {
	m.Calls.ListByTrial = append(m.Calls.ListByTrial, trialId)
	if m.Impl.ListByTrial != nil {
		return m.Impl.ListByTrial(ctx, trialId)
	}

	panic(errors.New("it should not be called"))
}

func (m *ResultInterface) SeriesByExperiment(ctx context.Context, experimentId int) ([]domain.MetricSeries, error) {
	m.Calls.SeriesByExperiment = append(m.Calls.SeriesByExperiment, experimentId)
	if m.Impl.SeriesByExperiment != nil {
		return m.Impl.SeriesByExperiment(ctx, experimentId)
	}

	panic(errors.New("it should not be called"))
}
