package liftstate

// LiftStatus is the single source of truth for the lift's physical state.
// Direction and door state are derived from it and never stored on their own.
type LiftStatus int

const (
	Idle LiftStatus = iota
	MovingUp
	MovingDown
	// DoorsOpening is reserved. Door opening is modelled as an instantaneous
	// edge, so no transition currently produces this status.
	DoorsOpening
	DoorsOpen
	DoorsClosing
	OutOfService
)

func (s LiftStatus) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case MovingUp:
		return "MOVING_UP"
	case MovingDown:
		return "MOVING_DOWN"
	case DoorsOpening:
		return "DOORS_OPENING"
	case DoorsOpen:
		return "DOORS_OPEN"
	case DoorsClosing:
		return "DOORS_CLOSING"
	case OutOfService:
		return "OUT_OF_SERVICE"
	default:
		return "UNDEFINED"
	}
}

// Action is the vocabulary a controller may emit each tick.
type Action int

const (
	ActionIdle Action = iota
	MoveUp
	MoveDown
	OpenDoor
	CloseDoor
)

func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "IDLE"
	case MoveUp:
		return "MOVE_UP"
	case MoveDown:
		return "MOVE_DOWN"
	case OpenDoor:
		return "OPEN_DOOR"
	case CloseDoor:
		return "CLOSE_DOOR"
	default:
		return "UNDEFINED"
	}
}

type Direction int

const (
	Down    Direction = -1
	DirIdle Direction = 0
	Up      Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case DirIdle:
		return "IDLE"
	default:
		return "UNDEFINED"
	}
}

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (d DoorState) String() string {
	switch d {
	case DoorOpen:
		return "OPEN"
	case DoorClosed:
		return "CLOSED"
	default:
		return "UNDEFINED"
	}
}

// Direction derives the travel direction from the status.
func (s LiftStatus) Direction() Direction {
	switch s {
	case MovingUp:
		return Up
	case MovingDown:
		return Down
	default:
		return DirIdle
	}
}

// DoorState derives the door state from the status. Doors in transition
// count as open until the closing completes.
func (s LiftStatus) DoorState() DoorState {
	switch s {
	case DoorsOpening, DoorsOpen, DoorsClosing:
		return DoorOpen
	default:
		return DoorClosed
	}
}
