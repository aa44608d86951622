package workers

import (
	"github.com/torii-ml/torii-api-types/misc/rfctime"
	"github.com/torii-ml/torii-api-types/workers"
	"github.com/torii-ml/torii/pkg/domain"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

func ComposeDetail(w domain.Worker) workers.Detail {
	return workers.Detail{
		Id:        w.Id,
		Name:      w.Name,
		CreatedAt: rfctime.New(w.CreatedAt),
		Active:    w.Active,
		CpuBrand:  w.CpuBrand,
		Memory:    w.Memory,
		GPUs: slices.Map(w.GPUs.GPUs, func(g domain.GPU) workers.GPU {
			return workers.GPU{Name: g.Name, Memory: g.Memory}
		}),
	}
}
