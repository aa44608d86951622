package trials

import (
	"github.com/torii-ml/torii-api-types/misc/rfctime"
	"github.com/torii-ml/torii-api-types/trials"
	"github.com/torii-ml/torii/pkg/domain"
)

func ComposeDetail(t domain.Trial) trials.Detail {
	return trials.Detail{
		Id:           t.Id,
		WorkerId:     t.WorkerId,
		ExperimentId: t.ExperimentId,
		StartedAt:    rfctime.New(t.StartedAt),
		Complete:     t.Complete,
	}
}

func ComposeAdmission(t domain.Trial, admitted bool) trials.Admission {
	if !admitted {
		return trials.Admission{
			Admitted: false,
			Reason:   "trial quota exhausted",
		}
	}
	detail := ComposeDetail(t)
	return trials.Admission{Admitted: true, Trial: &detail}
}
