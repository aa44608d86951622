package experiments

import (
	"github.com/torii-ml/torii-api-types/experiments"
	bindmetric "github.com/torii-ml/torii/pkg/api-types-binding/metrics"
	"github.com/torii-ml/torii/pkg/domain"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

func ComposeDetail(e domain.Experiment) experiments.Detail {
	hp := map[string]any(e.HyperParameters)
	if hp == nil {
		hp = map[string]any{}
	}
	return experiments.Detail{
		Id:              e.Id,
		Group:           e.Group,
		Identifier:      e.Identifier,
		HyperParameters: hp,
		Metrics:         slices.Map(e.Metrics, bindmetric.ComposeDetail),
		TrialQuota:      e.TrialQuota,
	}
}
