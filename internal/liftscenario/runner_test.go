package liftscenario

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftengine"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

func newTestRig(t *testing.T, commands []Command) (liftsched.Controller, *Runner) {
	t.Helper()
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	ctrl, err := liftsched.New(liftsched.NearestRequestRouting)
	if err != nil {
		t.Fatalf("New controller failed: %v", err)
	}
	eng, err := liftengine.NewBuilder().Controller(ctrl).Floors(0, 10).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return ctrl, NewRunner(ctrl, eng, commands)
}

func TestRunnerServesScriptedCalls(t *testing.T) {
	ctrl, runner := newTestRig(t, []Command{
		{Tick: 0, Value: CarCallCommand{Alias: "a", Destination: 3}},
		{Tick: 1, Value: HallCallCommand{Alias: "b", Floor: 5, Direction: liftstate.Down}},
	})

	state, err := runner.Run(15)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(ctrl.Requests()) != 0 {
		t.Errorf("Expected all scripted calls to complete, %d still active", len(ctrl.Requests()))
	}
	if state.Tick != 15 {
		t.Errorf("Final tick = %d, expected 15", state.Tick)
	}
	if state.Floor != 5 {
		t.Errorf("Final floor = %d, expected to end at the last served call", state.Floor)
	}
}

func TestRunnerCancelByAlias(t *testing.T) {
	ctrl, runner := newTestRig(t, []Command{
		{Tick: 0, Value: CarCallCommand{Alias: "a", Destination: 9}},
		{Tick: 1, Value: CancelCommand{Alias: "a"}},
	})

	if _, err := runner.Run(3); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(ctrl.Requests()) != 0 {
		t.Errorf("Expected the cancelled call to leave the active set")
	}
}

func TestRunnerCancelUnknownAliasIsSoft(t *testing.T) {
	_, runner := newTestRig(t, []Command{
		{Tick: 0, Value: CancelCommand{Alias: "ghost"}},
	})

	if _, err := runner.Run(2); err != nil {
		t.Errorf("Run failed on an unknown alias: %v", err)
	}
}

func TestRunnerOutOfServiceWindow(t *testing.T) {
	ctrl, runner := newTestRig(t, []Command{
		{Tick: 0, Value: CarCallCommand{Destination: 8}},
		{Tick: 2, Value: OutOfServiceCommand{}},
		{Tick: 4, Value: ReturnToServiceCommand{}},
		{Tick: 5, Value: CarCallCommand{Destination: 3}},
	})

	state, err := runner.Run(12)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(ctrl.Requests()) != 0 {
		t.Errorf("Expected the post-outage call to complete")
	}
	if state.Floor != 3 {
		t.Errorf("Final floor = %d, expected 3", state.Floor)
	}
}
