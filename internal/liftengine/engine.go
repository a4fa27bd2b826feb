// Package liftengine advances a single lift through discrete ticks. The
// engine owns the physical state (floor, status, timers); all scheduling
// lives in the controller it was built with. Time is purely logical: one
// unit per tick, no wall clock anywhere.
package liftengine

import (
	"fmt"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

type ParkingMode string

const (
	StayAtCurrentFloor ParkingMode = "STAY_AT_CURRENT_FLOOR"
	ParkToHomeFloor    ParkingMode = "PARK_TO_HOME_FLOOR"
)

// State is a read-only snapshot of the lift, taken between ticks.
// Direction and door state are derived from the status.
type State struct {
	Floor     int
	Status    liftstate.LiftStatus
	Direction liftstate.Direction
	DoorState liftstate.DoorState
	Tick      uint64
}

func (s State) String() string {
	return fmt.Sprintf("tick=%d floor=%d status=%s", s.Tick, s.Floor, s.Status)
}

// Engine is single-threaded by contract: Tick must be called serially by
// one driver and is not reentrant. No locking is used or needed.
type Engine struct {
	ctrl liftsched.Controller

	minFloor              int
	maxFloor              int
	travelTicksPerFloor   int
	doorTransitionTicks   int
	doorDwellTicks        int
	doorReopenWindowTicks int
	homeFloor             int
	idleTimeoutTicks      int
	parkingMode           ParkingMode

	floor  int
	status liftstate.LiftStatus
	tick   uint64

	travelTicks int // progress toward the next floor
	dwellTicks  int // ticks spent dwelling with doors open
	closeTicks  int // ticks since closing began; doubles as the reopen clock
	idleTicks   int // consecutive idle ticks with nothing pending
	parking     bool
}

func (e *Engine) CurrentTick() uint64 {
	return e.tick
}

func (e *Engine) CurrentState() State {
	return e.snapshot()
}

func (e *Engine) snapshot() State {
	return State{
		Floor:     e.floor,
		Status:    e.status,
		Direction: e.status.Direction(),
		DoorState: e.status.DoorState(),
		Tick:      e.tick,
	}
}

// SetOutOfService takes the lift out of service immediately. Any
// in-progress travel or door operation is abandoned, a deliberate
// simplification, and the controller cancels all active requests.
func (e *Engine) SetOutOfService() {
	e.status = liftstate.OutOfService
	e.resetCounters()
	e.ctrl.TakeOutOfService()
	logger.GetLogger().Warn().Int("floor", e.floor).Msg("lift out of service")
}

// ReturnToService puts the lift back to IDLE at the unchanged floor.
func (e *Engine) ReturnToService() {
	e.status = liftstate.Idle
	e.resetCounters()
	e.ctrl.ReturnToService()
	logger.GetLogger().Info().Int("floor", e.floor).Msg("lift returned to service")
}

func (e *Engine) resetCounters() {
	e.travelTicks = 0
	e.dwellTicks = 0
	e.closeTicks = 0
	e.idleTicks = 0
	e.parking = false
}

// Tick runs one synchronous simulation step and returns the resulting
// snapshot. An action that fails transition validation is a fatal internal
// invariant violation: the controller emitted something illegal for the
// current status.
func (e *Engine) Tick() (State, error) {
	if e.status == liftstate.OutOfService {
		e.tick++
		return e.snapshot(), nil
	}

	action := e.ctrl.DecideAction(e.floor, e.status)
	if !liftstate.IsActionAllowed(e.status, action) {
		return e.snapshot(), fmt.Errorf("controller emitted %v while %v at floor %d",
			action, e.status, e.floor)
	}

	if err := e.apply(action); err != nil {
		return e.snapshot(), err
	}

	e.tick++
	return e.snapshot(), nil
}

func (e *Engine) apply(action liftstate.Action) error {
	switch action {
	case liftstate.MoveUp:
		return e.applyMove(liftstate.Up, action)
	case liftstate.MoveDown:
		return e.applyMove(liftstate.Down, action)
	case liftstate.OpenDoor:
		e.applyOpen()
	case liftstate.CloseDoor:
		e.applyClose()
	case liftstate.ActionIdle:
		e.applyIdle()
	}
	return nil
}

func (e *Engine) applyMove(dir liftstate.Direction, action liftstate.Action) error {
	e.parking = false
	e.idleTicks = 0
	if e.status == liftstate.Idle {
		next, err := liftstate.NextStatus(e.status, action)
		if err != nil {
			return err
		}
		e.status = next
		e.travelTicks = 0
	}
	return e.progressTravel(dir)
}

// progressTravel advances the travel counter and commits whole floors
// only: floor values are never fractional or observable mid-step.
func (e *Engine) progressTravel(dir liftstate.Direction) error {
	e.travelTicks++
	if e.travelTicks < e.travelTicksPerFloor {
		return nil
	}
	next := e.floor + int(dir)
	if next < e.minFloor || next > e.maxFloor {
		return fmt.Errorf("travel past floor range: %d not in [%d, %d]", next, e.minFloor, e.maxFloor)
	}
	e.floor = next
	e.travelTicks = 0
	logger.GetLogger().Debug().Int("floor", e.floor).Str("status", e.status.String()).Msg("floor reached")
	return nil
}

func (e *Engine) applyOpen() {
	e.idleTicks = 0
	switch e.status {
	case liftstate.DoorsClosing:
		// Reopen window: only a call arriving early in the close may pull
		// the doors back open; past the window the close completes.
		if e.closeTicks < e.doorReopenWindowTicks {
			e.status = liftstate.DoorsOpen
			e.dwellTicks = 0
			logger.GetLogger().Debug().Int("floor", e.floor).Msg("doors reopened")
			return
		}
		e.progressClose()
	case liftstate.DoorsOpen:
		e.dwellTicks = 0 // a fresh call restarts the dwell
	default:
		// Idle or moving: opening is an instantaneous edge.
		e.parking = false
		e.status = liftstate.DoorsOpen
		e.travelTicks = 0
		e.dwellTicks = 0
		logger.GetLogger().Debug().Int("floor", e.floor).Msg("doors open")
	}
}

func (e *Engine) applyClose() {
	if e.status == liftstate.DoorsOpen {
		e.dwellTicks++
		if e.dwellTicks >= e.doorDwellTicks {
			e.status = liftstate.DoorsClosing
			e.closeTicks = 0
		}
		return
	}
	e.progressClose()
}

func (e *Engine) progressClose() {
	e.closeTicks++
	if e.closeTicks >= e.doorTransitionTicks {
		e.status = liftstate.Idle
		e.idleTicks = 0
		logger.GetLogger().Debug().Int("floor", e.floor).Msg("doors closed")
	}
}

func (e *Engine) applyIdle() {
	switch e.status {
	case liftstate.MovingUp, liftstate.MovingDown:
		if e.parking && len(e.ctrl.Requests()) == 0 {
			e.parkStep()
			return
		}
		// Arrival (or an aborted run) with nothing to service.
		e.parking = false
		e.status = liftstate.Idle
		e.travelTicks = 0
	case liftstate.DoorsClosing:
		e.progressClose()
	case liftstate.Idle:
		e.handleIdle()
	}
}

// handleIdle tracks the idle timeout and, under PARK_TO_HOME_FLOOR, starts
// repositioning toward the home floor once it elapses.
func (e *Engine) handleIdle() {
	if len(e.ctrl.Requests()) > 0 {
		e.idleTicks = 0
		e.parking = false
		return
	}
	if e.parking {
		e.parkStep()
		return
	}
	e.idleTicks++
	if e.parkingMode == ParkToHomeFloor && e.idleTicks >= e.idleTimeoutTicks && e.floor != e.homeFloor {
		logger.GetLogger().Info().Int("floor", e.floor).Int("home", e.homeFloor).Msg("idle timeout, parking")
		e.parking = true
		e.travelTicks = 0
		e.parkStep()
	}
}

func (e *Engine) parkStep() {
	dir := liftstate.Up
	if e.homeFloor < e.floor {
		dir = liftstate.Down
	}
	if e.status == liftstate.Idle {
		if dir == liftstate.Up {
			e.status = liftstate.MovingUp
		} else {
			e.status = liftstate.MovingDown
		}
	}
	e.travelTicks++
	if e.travelTicks < e.travelTicksPerFloor {
		return
	}
	e.floor += int(dir)
	e.travelTicks = 0
	if e.floor == e.homeFloor {
		e.status = liftstate.Idle
		e.parking = false
		e.idleTicks = 0
		logger.GetLogger().Info().Int("floor", e.floor).Msg("parked at home floor")
	}
}
