package results

import (
	"github.com/torii-ml/torii-api-types/results"
	bindmetric "github.com/torii-ml/torii/pkg/api-types-binding/metrics"
	"github.com/torii-ml/torii/pkg/domain"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

func ComposeDetail(r domain.Result) results.Detail {
	return results.Detail{
		Id:      r.Id,
		TrialId: r.TrialId,
		Metric:  bindmetric.ComposeDetail(r.Metric),
		Values: slices.Map(r.Values, func(v domain.ResultValue) results.Value {
			return results.Value{Step: v.Step, Value: v.Value}
		}),
	}
}

func ComposeSeries(s domain.MetricSeries) (results.Series, error) {
	best, err := s.Best()
	if err != nil {
		return results.Series{}, err
	}
	return results.Series{
		Metric:  bindmetric.ComposeDetail(s.Metric),
		TrialId: s.TrialId,
		Summary: s.Summary(),
		Best:    best,
		Steps:   s.Steps,
		Values:  s.Values,
	}, nil
}
