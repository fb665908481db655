package coachmark

import "github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"

// TourAction tells how a tour ended.
type TourAction int

const (
	TourFinished TourAction = iota // User advanced past the last step
	TourSkipped                    // User dismissed the tour with the exit control
)

func (a TourAction) String() string {
	if a == TourSkipped {
		return "skipped"
	}
	return "finished"
}

// TourResult is the return value of Tour.
type TourResult struct {
	Action    TourAction
	LastIndex int    // Index of the step that was showing when the tour ended
	LastStep  string // ID of that step
	Steps     int    // Number of steps in the tour
}

func tourResult(c *sequence.Controller, steps []sequence.Step) *TourResult {
	r := &TourResult{
		LastIndex: c.Index(),
		Steps:     len(steps),
	}
	if c.Outcome() == sequence.OutcomeSkipped {
		r.Action = TourSkipped
	}
	if c.Index() < len(steps) {
		r.LastStep = steps[c.Index()].ID()
	}
	return r
}
