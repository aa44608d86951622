package mock

import (
	"context"
	"errors"

	"github.com/torii-ml/torii/pkg/domain"
	dbmock "github.com/torii-ml/torii/pkg/domain/internal/db/mock"
	kdb "github.com/torii-ml/torii/pkg/domain/worker/db"
)

type WorkerInterface struct {
	Impl struct {
		Register  func(ctx context.Context, spec domain.WorkerSpec) (domain.Worker, error)
		List      func(ctx context.Context) ([]domain.Worker, error)
		Get       func(ctx context.Context, ids []int) (map[int]domain.Worker, error)
		SetActive func(ctx context.Context, name string, active bool) (domain.Worker, error)
	}

	Calls struct {
		Register  dbmock.CallLog[domain.WorkerSpec]
		List      dbmock.CallLog[struct{}]
		Get       dbmock.CallLog[[]int]
		SetActive dbmock.CallLog[struct {
			Name   string
			Active bool
		}]
	}
}

func NewWorkerInterface() *WorkerInterface {
	return &WorkerInterface{}
}

var _ kdb.Interface = &WorkerInterface{}

func (m *WorkerInterface) Register(ctx context.Context, spec domain.WorkerSpec) (domain.Worker, error) {
	m.Calls.Register = append(m.Calls.Register, spec)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, spec)
	}

	panic(errors.New("it should not be called"))
}

func (m *WorkerInterface) List(ctx context.Context) ([]domain.Worker, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List != nil {
		return m.Impl.List(ctx)
	}

	panic(errors.New("it should not be called"))
}

func (m *WorkerInterface) Get(ctx context.Context, ids []int) (map[int]domain.Worker, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}

	panic(errors.New("it should not be called"))
}

func (m *WorkerInterface) SetActive(ctx context.Context, name string, active bool) (domain.Worker, error) {
	m.Calls.SetActive = append(m.Calls.SetActive, struct {
		Name   string
		Active bool
	}{Name: name, Active: active})
	if m.Impl.SetActive != nil {
		return m.Impl.SetActive(ctx, name, active)
	}

	panic(errors.New("it should not be called"))
}
