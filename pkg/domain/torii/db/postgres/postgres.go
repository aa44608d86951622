package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
	kexperiment "github.com/torii-ml/torii/pkg/domain/experiment/db"
	kpgexperiment "github.com/torii-ml/torii/pkg/domain/experiment/db/postgres"
	kmetric "github.com/torii-ml/torii/pkg/domain/metric/db"
	kpgmetric "github.com/torii-ml/torii/pkg/domain/metric/db/postgres"
	kresult "github.com/torii-ml/torii/pkg/domain/result/db"
	kpgresult "github.com/torii-ml/torii/pkg/domain/result/db/postgres"
	kschema "github.com/torii-ml/torii/pkg/domain/schema/db"
	kpgschema "github.com/torii-ml/torii/pkg/domain/schema/db/postgres"
	dbInterface "github.com/torii-ml/torii/pkg/domain/torii/db"
	ktrial "github.com/torii-ml/torii/pkg/domain/trial/db"
	kpgtrial "github.com/torii-ml/torii/pkg/domain/trial/db/postgres"
	kworker "github.com/torii-ml/torii/pkg/domain/worker/db"
	kpgworker "github.com/torii-ml/torii/pkg/domain/worker/db/postgres"
	xe "github.com/torii-ml/torii/pkg/errors"
)

type toriiDBPostgres struct {
	pool       *pgxpool.Pool
	worker     kworker.Interface
	metric     kmetric.Interface
	experiment kexperiment.Interface
	trial      ktrial.Interface
	result     kresult.Interface
	schema     kschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (dbInterface.ToriiDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	c := Config{}
	for _, option := range options {
		c = *option(&c)
	}

	p := kpool.Wrap(pool)
	var schema kschema.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &toriiDBPostgres{
		pool:       pool,
		worker:     kpgworker.New(p),
		metric:     kpgmetric.New(p),
		experiment: kpgexperiment.New(p),
		trial:      kpgtrial.New(p),
		result:     kpgresult.New(p),
		schema:     schema,
	}, nil
}

func (t *toriiDBPostgres) Worker() kworker.Interface {
	return t.worker
}

func (t *toriiDBPostgres) Metric() kmetric.Interface {
	return t.metric
}

func (t *toriiDBPostgres) Experiment() kexperiment.Interface {
	return t.experiment
}

func (t *toriiDBPostgres) Trial() ktrial.Interface {
	return t.trial
}

func (t *toriiDBPostgres) Result() kresult.Interface {
	return t.result
}

func (t *toriiDBPostgres) Schema() kschema.SchemaInterface {
	return t.schema
}

func (t *toriiDBPostgres) Close() error {
	t.pool.Close()
	return nil
}
