package liftstate

import "fmt"

// transition is a single allowed edge of the status machine.
type transition struct {
	from   LiftStatus
	action Action
	to     LiftStatus
}

// transitionTable lists every edge a controller action may take. A status
// mapping an action back onto itself models a multi-tick operation
// continuing across ticks (traveling, dwelling, closing). OutOfService is
// entered directly by the engine, never through an action.
var transitionTable = []transition{
	{Idle, ActionIdle, Idle},
	{Idle, MoveUp, MovingUp},
	{Idle, MoveDown, MovingDown},
	{Idle, OpenDoor, DoorsOpen},

	{MovingUp, MoveUp, MovingUp},
	{MovingUp, OpenDoor, DoorsOpen}, // arrival opens doors without passing through Idle
	{MovingUp, ActionIdle, Idle},    // arrival with nothing to service

	{MovingDown, MoveDown, MovingDown},
	{MovingDown, OpenDoor, DoorsOpen},
	{MovingDown, ActionIdle, Idle},

	{DoorsOpen, OpenDoor, DoorsOpen},
	{DoorsOpen, ActionIdle, DoorsOpen}, // hold
	{DoorsOpen, CloseDoor, DoorsClosing},

	{DoorsClosing, CloseDoor, DoorsClosing},
	{DoorsClosing, OpenDoor, DoorsOpen}, // reopen window
	{DoorsClosing, ActionIdle, Idle},    // close complete

	{OutOfService, ActionIdle, OutOfService},
}

// NextStatus returns the status that applying action in status commits to.
// The pair must be an edge of the transition table.
func NextStatus(status LiftStatus, action Action) (LiftStatus, error) {
	for _, tr := range transitionTable {
		if tr.from == status && tr.action == action {
			return tr.to, nil
		}
	}
	return status, fmt.Errorf("no transition from %v on %v", status, action)
}

// IsActionAllowed reports whether a controller may emit action while the
// lift is in status.
func IsActionAllowed(status LiftStatus, action Action) bool {
	_, err := NextStatus(status, action)
	return err == nil
}

// ValidNextStatuses returns every status reachable from status within one
// tick. Every status can continue as itself; every status except
// OutOfService can be forced into OutOfService; OutOfService itself can
// only return to Idle.
func ValidNextStatuses(status LiftStatus) []LiftStatus {
	if status == OutOfService {
		return []LiftStatus{OutOfService, Idle}
	}

	next := []LiftStatus{status}
	seen := map[LiftStatus]bool{status: true}
	for _, tr := range transitionTable {
		if tr.from == status && !seen[tr.to] {
			next = append(next, tr.to)
			seen[tr.to] = true
		}
	}
	if !seen[OutOfService] {
		next = append(next, OutOfService)
	}
	return next
}

// IsValidTransition reports whether the lift may go from one status to
// another. A self-transition is always valid: it models an operation
// continuing across ticks.
func IsValidTransition(from, to LiftStatus) bool {
	if from == to {
		return true
	}
	for _, s := range ValidNextStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}
