package liftrequest

import (
	"errors"
	"fmt"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
)

type RequestType int

const (
	HallCall RequestType = iota
	CarCall
)

func (t RequestType) String() string {
	switch t {
	case HallCall:
		return "HALL_CALL"
	case CarCall:
		return "CAR_CALL"
	default:
		return "UNDEFINED"
	}
}

type RequestState int

const (
	Created RequestState = iota
	Queued
	Assigned
	Serving
	Completed
	Cancelled
)

func (s RequestState) String() string {
	switch s {
	case Created:
		return "CREATED"
	case Queued:
		return "QUEUED"
	case Assigned:
		return "ASSIGNED"
	case Serving:
		return "SERVING"
	case Completed:
		return "COMPLETED"
	case Cancelled:
		return "CANCELLED"
	default:
		return "UNDEFINED"
	}
}

// lifecycleTable lists the allowed lifecycle edges. Assigned -> Queued is
// the only backward edge (reassignment); Completed and Cancelled are
// terminal.
var lifecycleTable = map[RequestState][]RequestState{
	Created:  {Queued, Cancelled},
	Queued:   {Assigned, Cancelled},
	Assigned: {Serving, Queued, Cancelled},
	Serving:  {Completed, Cancelled},
}

// TransitionError reports a lifecycle transition that violates the table.
// It indicates a controller defect, not recoverable input.
type TransitionError struct {
	ID   uint64
	From RequestState
	To   RequestState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("request %d: invalid lifecycle transition %v -> %v", e.ID, e.From, e.To)
}

// Sequence hands out monotonically increasing request identities. It is
// owned by whichever component originates requests, so independent
// engine instances stay isolated and deterministic under test.
type Sequence struct {
	next uint64
}

func (s *Sequence) Next() uint64 {
	s.next++
	return s.next
}

// Request is a single hall or car call with an explicit lifecycle state.
// Transitions replace the value rather than mutating it in place.
type Request struct {
	ID          uint64
	Type        RequestType
	Floor       int // hall call origin
	Origin      int // car call origin, meaningful only when HasOrigin
	HasOrigin   bool
	Destination int // car call destination
	Direction   liftstate.Direction
	State       RequestState
}

// NewHallCall creates a hall call from a floor with a desired travel
// direction. A hall call without a direction is rejected.
func NewHallCall(seq *Sequence, floor int, dir liftstate.Direction) (Request, error) {
	if dir == liftstate.DirIdle {
		return Request{}, errors.New("hall call requires a travel direction")
	}
	return Request{
		ID:        seq.Next(),
		Type:      HallCall,
		Floor:     floor,
		Direction: dir,
		State:     Created,
	}, nil
}

// NewCarCall creates a car call to a destination floor.
func NewCarCall(seq *Sequence, destination int) Request {
	return Request{
		ID:          seq.Next(),
		Type:        CarCall,
		Destination: destination,
		State:       Created,
	}
}

// NewCarCallBetween creates a car call with a known origin; the direction
// follows from the sign of destination - origin.
func NewCarCallBetween(seq *Sequence, origin, destination int) Request {
	r := NewCarCall(seq, destination)
	r.Origin = origin
	r.HasOrigin = true
	switch {
	case destination > origin:
		r.Direction = liftstate.Up
	case destination < origin:
		r.Direction = liftstate.Down
	}
	return r
}

// TargetFloor is the floor the lift must reach to serve the request: the
// origin for hall calls, the destination for car calls.
func (r Request) TargetFloor() int {
	if r.Type == HallCall {
		return r.Floor
	}
	return r.Destination
}

func (r Request) IsTerminal() bool {
	return r.State == Completed || r.State == Cancelled
}

// Transition returns a copy of the request advanced to the given state, or
// a TransitionError if the edge is not in the lifecycle table. There are no
// self-transitions and no transitions out of a terminal state.
func (r Request) Transition(to RequestState) (Request, error) {
	for _, allowed := range lifecycleTable[r.State] {
		if allowed == to {
			out := r
			out.State = to
			return out, nil
		}
	}
	return r, &TransitionError{ID: r.ID, From: r.State, To: to}
}
