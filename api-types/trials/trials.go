package trials

import (
	"github.com/torii-ml/torii-api-types/misc/rfctime"
)

// AdmissionSpec asks to start (or resume) a trial of an experiment on
// a worker.
type AdmissionSpec struct {
	WorkerId     int `json:"workerId"`
	ExperimentId int `json:"experimentId"`
}

type Detail struct {
	Id           int             `json:"id"`
	WorkerId     int             `json:"workerId"`
	ExperimentId int             `json:"experimentId"`
	StartedAt    rfctime.RFC3339 `json:"startedAt"`
	Complete     bool            `json:"complete"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.WorkerId == o.WorkerId &&
		d.ExperimentId == o.ExperimentId &&
		d.StartedAt.Equal(o.StartedAt) &&
		d.Complete == o.Complete
}

// Admission is the outcome of an admission request.
//
// A full experiment is not an error: the response is 200 with
// Admitted = false and no trial.
type Admission struct {
	Admitted bool    `json:"admitted"`
	Reason   string  `json:"reason,omitempty"`
	Trial    *Detail `json:"trial,omitempty"`
}

func (a Admission) Equal(o Admission) bool {
	if a.Admitted != o.Admitted || a.Reason != o.Reason {
		return false
	}
	if a.Trial == nil || o.Trial == nil {
		return a.Trial == o.Trial
	}
	return a.Trial.Equal(*o.Trial)
}
