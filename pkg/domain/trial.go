package domain

import (
	"time"

	"github.com/torii-ml/torii/pkg/utils/logic"
)

// Trial is one execution attempt of an Experiment by a Worker.
//
// A trial starts incomplete and is switched to complete exactly once,
// by an explicit completion call. There is no automatic timeout: a trial
// abandoned by a crashed worker stays incomplete until some external
// sweeper deals with it.
type Trial struct {
	Id           int
	WorkerId     int
	ExperimentId int
	StartedAt    time.Time
	Complete     bool
}

func (t Trial) Equal(o Trial) bool {
	return t.Id == o.Id &&
		t.WorkerId == o.WorkerId &&
		t.ExperimentId == o.ExperimentId &&
		t.StartedAt.Equal(o.StartedAt) &&
		t.Complete == o.Complete
}

// TrialFindQuery narrows Find results.
// Zero/empty fields do not narrow.
type TrialFindQuery struct {
	ExperimentId []int
	WorkerId     []int
	Complete     logic.Ternary
}
