package torii

import (
	"context"

	sconf "github.com/torii-ml/torii/pkg/configs/server"
	"github.com/torii-ml/torii/pkg/domain/experiment"
	"github.com/torii-ml/torii/pkg/domain/metric"
	"github.com/torii-ml/torii/pkg/domain/result"
	"github.com/torii-ml/torii/pkg/domain/schema"
	tdb "github.com/torii-ml/torii/pkg/domain/torii/db"
	"github.com/torii-ml/torii/pkg/domain/torii/db/postgres"
	"github.com/torii-ml/torii/pkg/domain/trial"
	"github.com/torii-ml/torii/pkg/domain/worker"
)

// Torii bundles the domain interfaces of the tracking service.
type Torii interface {
	Config() *sconf.ServerConfig

	Worker() worker.Interface
	Metric() metric.Interface
	Experiment() experiment.Interface
	Trial() trial.Interface
	Result() result.Interface

	Schema() schema.Interface

	Close() error
}

type torii struct {
	config *sconf.ServerConfig
	db     tdb.ToriiDatabase

	worker     worker.Interface
	metric     metric.Interface
	experiment experiment.Interface
	trial      trial.Interface
	result     result.Interface

	schema schema.Interface
}

func New(
	ctx context.Context,
	config *sconf.ServerConfig,
	options ...Option,
) (Torii, error) {
	opt := &_options{}
	for _, o := range options {
		o(opt)
	}

	pg, err := postgres.New(ctx, config.DBURI, opt.pg...)
	if err != nil {
		return nil, err
	}
	return Build(config, pg), nil
}

// Build bundles an already-connected database.
func Build(config *sconf.ServerConfig, db tdb.ToriiDatabase) Torii {
	return &torii{
		config: config,
		db:     db,

		worker:     worker.New(db.Worker()),
		metric:     metric.New(db.Metric()),
		experiment: experiment.New(db.Experiment()),
		trial:      trial.New(db.Trial()),
		result:     result.New(db.Result()),

		schema: schema.New(db.Schema()),
	}
}

type Option func(*_options)

type _options struct {
	pg []postgres.Option
}

func WithSchemaRepository(repository string) Option {
	return func(o *_options) {
		o.pg = append(o.pg, postgres.WithSchemaRepository(repository))
	}
}

func (t *torii) Config() *sconf.ServerConfig {
	return t.config
}

func (t *torii) Worker() worker.Interface {
	return t.worker
}

func (t *torii) Metric() metric.Interface {
	return t.metric
}

func (t *torii) Experiment() experiment.Interface {
	return t.experiment
}

func (t *torii) Trial() trial.Interface {
	return t.trial
}

func (t *torii) Result() result.Interface {
	return t.result
}

func (t *torii) Schema() schema.Interface {
	return t.schema
}

func (t *torii) Close() error {
	return t.db.Close()
}
