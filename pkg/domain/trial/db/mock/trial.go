package mock

import (
	"context"
	"errors"

	"github.com/torii-ml/torii/pkg/domain"
	dbmock "github.com/torii-ml/torii/pkg/domain/internal/db/mock"
	kdb "github.com/torii-ml/torii/pkg/domain/trial/db"
)

type TrialInterface struct {
	Impl struct {
		Admit    func(ctx context.Context, workerId int, experimentId int) (domain.Trial, bool, error)
		Complete func(ctx context.Context, trialId int) (domain.Trial, error)
		Get      func(ctx context.Context, ids []int) (map[int]domain.Trial, error)
		Find     func(ctx context.Context, query domain.TrialFindQuery) ([]int, error)
	}

	Calls struct {
		Admit dbmock.CallLog[struct {
			WorkerId     int
			ExperimentId int
		}]
		Complete dbmock.CallLog[int]
		Get      dbmock.CallLog[[]int]
		Find     dbmock.CallLog[domain.TrialFindQuery]
	}
}

func NewTrialInterface() *TrialInterface {
	return &TrialInterface{}
}

var _ kdb.Interface = &TrialInterface{}

func (m *TrialInterface) Admit(ctx context.Context, workerId int, experimentId int) (domain.Trial, bool, error) {
	m.Calls.Admit = append(m.Calls.Admit, struct {
		WorkerId     int
		ExperimentId int
	}{WorkerId: workerId, ExperimentId: experimentId})
	if m.Impl.Admit != nil {
		return m.Impl.Admit(ctx, workerId, experimentId)
	}

	panic(errors.New("it should not be called"))
}

func (m *TrialInterface) Complete(ctx context.Context, trialId int) (domain.Trial, error) {
	m.Calls.Complete = append(m.Calls.Complete, trialId)
	if m.Impl.Complete != nil {
		return m.Impl.Complete(ctx, trialId)
	}

	panic(errors.New("it should not be called"))
}

func (m *TrialInterface) Get(ctx context.Context, ids []int) (map[int]domain.Trial, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}

	panic(errors.New("it should not be called"))
}

func (m *TrialInterface) Find(ctx context.Context, query domain.TrialFindQuery) ([]int, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}

	panic(errors.New("it should not be called"))
}
