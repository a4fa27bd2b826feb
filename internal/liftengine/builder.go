package liftengine

import (
	"errors"
	"fmt"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
)

// Builder assembles an Engine. Floor bounds and a controller are
// mandatory; everything else has a sensible default. Build fails fast on
// an internally inconsistent combination.
type Builder struct {
	ctrl                  liftsched.Controller
	minFloor              int
	maxFloor              int
	initialFloor          *int
	travelTicksPerFloor   int
	doorTransitionTicks   int
	doorDwellTicks        int
	doorReopenWindowTicks int
	homeFloor             *int
	idleTimeoutTicks      int
	parkingMode           ParkingMode
}

func NewBuilder() *Builder {
	return &Builder{
		travelTicksPerFloor: 1,
		doorTransitionTicks: 1,
		doorDwellTicks:      1,
		parkingMode:         StayAtCurrentFloor,
	}
}

func (b *Builder) Controller(c liftsched.Controller) *Builder {
	b.ctrl = c
	return b
}

func (b *Builder) Floors(min, max int) *Builder {
	b.minFloor = min
	b.maxFloor = max
	return b
}

func (b *Builder) InitialFloor(floor int) *Builder {
	b.initialFloor = &floor
	return b
}

func (b *Builder) TravelTicksPerFloor(n int) *Builder {
	b.travelTicksPerFloor = n
	return b
}

func (b *Builder) DoorTransitionTicks(n int) *Builder {
	b.doorTransitionTicks = n
	return b
}

func (b *Builder) DoorDwellTicks(n int) *Builder {
	b.doorDwellTicks = n
	return b
}

func (b *Builder) DoorReopenWindowTicks(n int) *Builder {
	b.doorReopenWindowTicks = n
	return b
}

func (b *Builder) HomeFloor(floor int) *Builder {
	b.homeFloor = &floor
	return b
}

func (b *Builder) IdleTimeoutTicks(n int) *Builder {
	b.idleTimeoutTicks = n
	return b
}

func (b *Builder) IdleParking(mode ParkingMode) *Builder {
	b.parkingMode = mode
	return b
}

func (b *Builder) Build() (*Engine, error) {
	if b.ctrl == nil {
		return nil, errors.New("engine requires a controller")
	}
	if b.minFloor >= b.maxFloor {
		return nil, fmt.Errorf("minFloor (%d) must be below maxFloor (%d)", b.minFloor, b.maxFloor)
	}
	if b.travelTicksPerFloor < 1 {
		return nil, fmt.Errorf("travelTicksPerFloor must be at least 1, got %d", b.travelTicksPerFloor)
	}
	if b.doorTransitionTicks < 1 {
		return nil, fmt.Errorf("doorTransitionTicks must be at least 1, got %d", b.doorTransitionTicks)
	}
	if b.doorDwellTicks < 1 {
		return nil, fmt.Errorf("doorDwellTicks must be at least 1, got %d", b.doorDwellTicks)
	}
	if b.doorReopenWindowTicks < 0 || b.doorReopenWindowTicks > b.doorTransitionTicks {
		return nil, fmt.Errorf("doorReopenWindowTicks must be within [0, %d], got %d",
			b.doorTransitionTicks, b.doorReopenWindowTicks)
	}
	if b.idleTimeoutTicks < 0 {
		return nil, fmt.Errorf("idleTimeoutTicks must not be negative, got %d", b.idleTimeoutTicks)
	}
	if b.parkingMode != StayAtCurrentFloor && b.parkingMode != ParkToHomeFloor {
		return nil, fmt.Errorf("unknown idle parking mode %q", b.parkingMode)
	}

	initial := b.minFloor
	if b.initialFloor != nil {
		initial = *b.initialFloor
	}
	if initial < b.minFloor || initial > b.maxFloor {
		return nil, fmt.Errorf("initialFloor %d outside [%d, %d]", initial, b.minFloor, b.maxFloor)
	}

	home := b.minFloor
	if b.homeFloor != nil {
		home = *b.homeFloor
	}
	if home < b.minFloor || home > b.maxFloor {
		return nil, fmt.Errorf("homeFloor %d outside [%d, %d]", home, b.minFloor, b.maxFloor)
	}

	return &Engine{
		ctrl:                  b.ctrl,
		minFloor:              b.minFloor,
		maxFloor:              b.maxFloor,
		travelTicksPerFloor:   b.travelTicksPerFloor,
		doorTransitionTicks:   b.doorTransitionTicks,
		doorDwellTicks:        b.doorDwellTicks,
		doorReopenWindowTicks: b.doorReopenWindowTicks,
		homeFloor:             home,
		idleTimeoutTicks:      b.idleTimeoutTicks,
		parkingMode:           b.parkingMode,
		floor:                 initial,
		status:                liftstate.Idle,
	}, nil
}
