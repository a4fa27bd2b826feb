package liftstate

import "testing"

var allStatuses = []LiftStatus{
	Idle, MovingUp, MovingDown, DoorsOpening, DoorsOpen, DoorsClosing, OutOfService,
}

var allActions = []Action{ActionIdle, MoveUp, MoveDown, OpenDoor, CloseDoor}

func TestNextStatusKeyEdges(t *testing.T) {
	testCases := []struct {
		status LiftStatus
		action Action
		next   LiftStatus
	}{
		{Idle, MoveUp, MovingUp},
		{Idle, MoveDown, MovingDown},
		{Idle, OpenDoor, DoorsOpen},
		{MovingUp, OpenDoor, DoorsOpen},
		{MovingDown, OpenDoor, DoorsOpen},
		{MovingUp, ActionIdle, Idle},
		{MovingDown, ActionIdle, Idle},
		{DoorsOpen, CloseDoor, DoorsClosing},
		{DoorsClosing, OpenDoor, DoorsOpen},
		{DoorsClosing, ActionIdle, Idle},
	}

	for _, tc := range testCases {
		next, err := NextStatus(tc.status, tc.action)
		if err != nil {
			t.Errorf("NextStatus(%v, %v) returned error %v, expected %v", tc.status, tc.action, err, tc.next)
			continue
		}
		if next != tc.next {
			t.Errorf("NextStatus(%v, %v) = %v, expected %v", tc.status, tc.action, next, tc.next)
		}
	}
}

func TestNextStatusDeterministic(t *testing.T) {
	for _, status := range allStatuses {
		for _, action := range allActions {
			first, errFirst := NextStatus(status, action)
			second, errSecond := NextStatus(status, action)
			if first != second || (errFirst == nil) != (errSecond == nil) {
				t.Errorf("NextStatus(%v, %v) not deterministic: (%v, %v) then (%v, %v)",
					status, action, first, errFirst, second, errSecond)
			}
		}
	}
}

func TestIsActionAllowed(t *testing.T) {
	testCases := []struct {
		status  LiftStatus
		action  Action
		allowed bool
	}{
		{DoorsOpen, MoveUp, false},
		{DoorsOpen, MoveDown, false},
		{Idle, OpenDoor, true},
		{DoorsOpen, CloseDoor, true},
		{DoorsClosing, MoveUp, false},
		{DoorsClosing, MoveDown, false},
		{Idle, CloseDoor, false},
		{MovingUp, MoveDown, false},
		{MovingDown, MoveUp, false},
	}

	for _, tc := range testCases {
		if got := IsActionAllowed(tc.status, tc.action); got != tc.allowed {
			t.Errorf("IsActionAllowed(%v, %v) = %v, expected %v", tc.status, tc.action, got, tc.allowed)
		}
	}
}

func TestEveryStatusAdmitsSelfTransition(t *testing.T) {
	for _, status := range allStatuses {
		if !IsValidTransition(status, status) {
			t.Errorf("Expected self-transition from %v to be valid", status)
		}
	}
}

func TestOutOfServiceReachability(t *testing.T) {
	for _, status := range allStatuses {
		if status == OutOfService {
			continue
		}
		if !IsValidTransition(status, OutOfService) {
			t.Errorf("Expected %v to reach OUT_OF_SERVICE", status)
		}
	}

	for _, status := range allStatuses {
		valid := IsValidTransition(OutOfService, status)
		expected := status == Idle || status == OutOfService
		if valid != expected {
			t.Errorf("IsValidTransition(OUT_OF_SERVICE, %v) = %v, expected %v", status, valid, expected)
		}
	}
}

func TestDoorsClosingCannotReachMoving(t *testing.T) {
	if IsValidTransition(DoorsClosing, MovingUp) || IsValidTransition(DoorsClosing, MovingDown) {
		t.Errorf("Expected DOORS_CLOSING to require a full return to IDLE before moving")
	}

	// What remains reachable: itself, the reopen edge, the completed close,
	// and the forced out-of-service.
	expected := map[LiftStatus]bool{
		DoorsClosing: true,
		DoorsOpen:    true,
		Idle:         true,
		OutOfService: true,
	}
	for _, status := range ValidNextStatuses(DoorsClosing) {
		if !expected[status] {
			t.Errorf("Unexpected status %v reachable from DOORS_CLOSING", status)
		}
		delete(expected, status)
	}
	for status := range expected {
		t.Errorf("Expected %v to be reachable from DOORS_CLOSING", status)
	}
}

func TestDerivedDirectionAndDoorState(t *testing.T) {
	testCases := []struct {
		status LiftStatus
		dir    Direction
		door   DoorState
	}{
		{Idle, DirIdle, DoorClosed},
		{MovingUp, Up, DoorClosed},
		{MovingDown, Down, DoorClosed},
		{DoorsOpen, DirIdle, DoorOpen},
		{DoorsClosing, DirIdle, DoorOpen},
		{OutOfService, DirIdle, DoorClosed},
	}

	for _, tc := range testCases {
		if got := tc.status.Direction(); got != tc.dir {
			t.Errorf("%v.Direction() = %v, expected %v", tc.status, got, tc.dir)
		}
		if got := tc.status.DoorState(); got != tc.door {
			t.Errorf("%v.DoorState() = %v, expected %v", tc.status, got, tc.door)
		}
	}
}

func TestStatusString(t *testing.T) {
	statusStrings := []string{
		"IDLE", "MOVING_UP", "MOVING_DOWN", "DOORS_OPENING", "DOORS_OPEN", "DOORS_CLOSING", "OUT_OF_SERVICE",
	}
	for i, status := range allStatuses {
		if status.String() != statusStrings[i] {
			t.Errorf("LiftStatus.String() returned %v, expected %v", status.String(), statusStrings[i])
		}
	}
	if LiftStatus(99).String() != "UNDEFINED" {
		t.Errorf("LiftStatus.String() returned %v, expected UNDEFINED", LiftStatus(99).String())
	}
}
