package metrics

import (
	"github.com/torii-ml/torii-api-types/metrics"
	"github.com/torii-ml/torii/pkg/domain"
)

func ComposeDetail(m domain.Metric) metrics.Detail {
	return metrics.Detail{
		Id:   m.Id,
		Name: m.Name,
		Mode: metrics.Mode(m.Mode),
	}
}
