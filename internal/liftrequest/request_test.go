package liftrequest

import (
	"errors"
	"testing"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
)

func TestSequenceMonotonic(t *testing.T) {
	var seq Sequence
	prev := uint64(0)
	for i := 0; i < 100; i++ {
		id := seq.Next()
		if id <= prev {
			t.Errorf("Sequence.Next() = %d after %d, expected strictly increasing", id, prev)
		}
		prev = id
	}
}

func TestHallCallRequiresDirection(t *testing.T) {
	var seq Sequence
	if _, err := NewHallCall(&seq, 2, liftstate.DirIdle); err == nil {
		t.Errorf("Expected NewHallCall with direction IDLE to fail")
	}

	r, err := NewHallCall(&seq, 2, liftstate.Up)
	if err != nil {
		t.Errorf("Expected hall call to be created, got %v", err)
	}
	if r.TargetFloor() != 2 {
		t.Errorf("TargetFloor() = %d, expected 2", r.TargetFloor())
	}
	if r.State != Created {
		t.Errorf("New request state = %v, expected CREATED", r.State)
	}
}

func TestCarCallDirectionInference(t *testing.T) {
	testCases := []struct {
		origin      int
		destination int
		dir         liftstate.Direction
	}{
		{0, 5, liftstate.Up},
		{5, 0, liftstate.Down},
		{3, 3, liftstate.DirIdle},
	}

	var seq Sequence
	for _, tc := range testCases {
		r := NewCarCallBetween(&seq, tc.origin, tc.destination)
		if r.Direction != tc.dir {
			t.Errorf("NewCarCallBetween(%d, %d) direction = %v, expected %v",
				tc.origin, tc.destination, r.Direction, tc.dir)
		}
		if !r.HasOrigin || r.Origin != tc.origin {
			t.Errorf("NewCarCallBetween(%d, %d) did not record the origin", tc.origin, tc.destination)
		}
		if r.TargetFloor() != tc.destination {
			t.Errorf("TargetFloor() = %d, expected %d", r.TargetFloor(), tc.destination)
		}
	}
}

func TestLifecycleHappyPath(t *testing.T) {
	var seq Sequence
	r := NewCarCall(&seq, 4)

	path := []RequestState{Queued, Assigned, Serving, Completed}
	for _, next := range path {
		var err error
		r, err = r.Transition(next)
		if err != nil {
			t.Errorf("Transition to %v failed: %v", next, err)
		}
		if r.State != next {
			t.Errorf("State = %v, expected %v", r.State, next)
		}
	}
	if !r.IsTerminal() {
		t.Errorf("Expected COMPLETED to be terminal")
	}
}

func TestReassignmentIsTheOnlyBackwardEdge(t *testing.T) {
	var seq Sequence
	r := NewCarCall(&seq, 4)
	r, _ = r.Transition(Queued)
	r, _ = r.Transition(Assigned)

	back, err := r.Transition(Queued)
	if err != nil {
		t.Errorf("Expected ASSIGNED -> QUEUED to be allowed, got %v", err)
	}
	if back.State != Queued {
		t.Errorf("State = %v, expected QUEUED", back.State)
	}

	serving, _ := r.Transition(Serving)
	if _, err := serving.Transition(Queued); err == nil {
		t.Errorf("Expected SERVING -> QUEUED to be rejected")
	}
	if _, err := serving.Transition(Assigned); err == nil {
		t.Errorf("Expected SERVING -> ASSIGNED to be rejected")
	}
}

func TestNoSelfTransitions(t *testing.T) {
	var seq Sequence
	r := NewCarCall(&seq, 1)
	r, _ = r.Transition(Queued)
	if _, err := r.Transition(Queued); err == nil {
		t.Errorf("Expected QUEUED -> QUEUED to be rejected")
	}
}

func TestTerminalStatesAdmitNoTransitions(t *testing.T) {
	var seq Sequence
	for _, terminal := range []RequestState{Completed, Cancelled} {
		r := NewCarCall(&seq, 1)
		r.State = terminal
		for _, next := range []RequestState{Created, Queued, Assigned, Serving, Completed, Cancelled} {
			_, err := r.Transition(next)
			if err == nil {
				t.Errorf("Expected transition %v -> %v to be rejected", terminal, next)
				continue
			}
			var trErr *TransitionError
			if !errors.As(err, &trErr) {
				t.Errorf("Expected a TransitionError, got %v", err)
			}
		}
	}
}

func TestCancellableFromEveryActiveState(t *testing.T) {
	var seq Sequence
	for _, from := range []RequestState{Created, Queued, Assigned, Serving} {
		r := NewCarCall(&seq, 1)
		r.State = from
		cancelled, err := r.Transition(Cancelled)
		if err != nil {
			t.Errorf("Expected %v -> CANCELLED to be allowed, got %v", from, err)
		}
		if !cancelled.IsTerminal() {
			t.Errorf("Expected CANCELLED to be terminal")
		}
	}
}
