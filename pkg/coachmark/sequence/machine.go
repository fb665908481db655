package sequence

import (
	"log/slog"

	"github.com/felixgeelhaar/statekit"
)

// Phase is the coarse state of a walkthrough.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseActive     Phase = "active"
	PhaseFinished   Phase = "finished"
)

// Outcome tells a natural completion apart from an explicit dismissal.
type Outcome int

const (
	OutcomeNone      Outcome = iota // still running or never started
	OutcomeCompleted                // advanced past the last step
	OutcomeSkipped                  // dismissed with Skip
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "none"
	}
}

// Machine states and events. Kept untyped so they convert to statekit's
// StateID and EventType.
const (
	stateIdle      = "idle"
	stateActive    = "active"
	stateCompleted = "completed"
	stateSkipped   = "skipped"

	eventStart  = "START"
	eventFinish = "FINISH"
	eventSkip   = "SKIP"
)

type machineContext struct{}

// buildMachine constructs the walkthrough state machine:
//
//	idle --START--> active --FINISH--> completed
//	                  \-----SKIP-----> skipped
//
// completed and skipped accept no events.
func buildMachine(id string, logger *slog.Logger) (*statekit.Interpreter[machineContext], error) {
	machine, err := statekit.NewMachine[machineContext]("coachmark-" + id).
		WithInitial(stateIdle).
		WithContext(machineContext{}).
		WithAction("logStart", func(_ *machineContext, _ statekit.Event) {
			logger.Debug("Walkthrough started", "sequence", id)
		}).
		WithAction("logCompleted", func(_ *machineContext, _ statekit.Event) {
			logger.Debug("Walkthrough completed", "sequence", id)
		}).
		WithAction("logSkipped", func(_ *machineContext, _ statekit.Event) {
			logger.Debug("Walkthrough skipped", "sequence", id)
		}).
		State(stateIdle).
		On(eventStart).Target(stateActive).Done().
		State(stateActive).
		OnEntry("logStart").
		On(eventFinish).Target(stateCompleted).
		On(eventSkip).Target(stateSkipped).Done().
		State(stateCompleted).
		OnEntry("logCompleted").Done().
		State(stateSkipped).
		OnEntry("logSkipped").Done().
		Build()
	if err != nil {
		return nil, err
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()
	return interp, nil
}

func phaseOf(state string) (Phase, Outcome) {
	switch state {
	case stateActive:
		return PhaseActive, OutcomeNone
	case stateCompleted:
		return PhaseFinished, OutcomeCompleted
	case stateSkipped:
		return PhaseFinished, OutcomeSkipped
	default:
		return PhaseNotStarted, OutcomeNone
	}
}
