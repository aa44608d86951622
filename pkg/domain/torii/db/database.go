package db

import (
	kexperiment "github.com/torii-ml/torii/pkg/domain/experiment/db"
	kmetric "github.com/torii-ml/torii/pkg/domain/metric/db"
	kresult "github.com/torii-ml/torii/pkg/domain/result/db"
	kschema "github.com/torii-ml/torii/pkg/domain/schema/db"
	ktrial "github.com/torii-ml/torii/pkg/domain/trial/db"
	kworker "github.com/torii-ml/torii/pkg/domain/worker/db"
)

type ToriiDatabase interface {
	Worker() kworker.Interface
	Metric() kmetric.Interface
	Experiment() kexperiment.Interface
	Trial() ktrial.Interface
	Result() kresult.Interface
	Schema() kschema.SchemaInterface
	Close() error
}
