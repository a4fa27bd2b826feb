// Package liftscenario replays scripted passenger activity against a
// running simulation. A scenario is a list of commands, each pinned to the
// tick it fires before.
package liftscenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
)

type Command struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Tick  int
	Value any
}

type CarCallCommand struct {
	Alias       string
	Destination int
	Origin      *int // optional boarding floor
}

type HallCallCommand struct {
	Alias     string
	Floor     int
	Direction liftstate.Direction
}

type CancelCommand struct {
	Alias string
}

type OutOfServiceCommand struct {
}

type ReturnToServiceCommand struct {
}

func (c *Command) CommandType() string {
	switch c.Value.(type) {
	case CarCallCommand:
		return "CarCallCommand"
	case HallCallCommand:
		return "HallCallCommand"
	case CancelCommand:
		return "CancelCommand"
	case OutOfServiceCommand:
		return "OutOfServiceCommand"
	case ReturnToServiceCommand:
		return "ReturnToServiceCommand"
	default:
		return "UnknownCommand"
	}
}

// rawCommand is the superset of every command's YAML fields; the "do"
// discriminator picks which ones matter.
type rawCommand struct {
	Tick      int    `yaml:"tick"`
	Do        string `yaml:"do"`
	Alias     string `yaml:"alias"`
	Floor     *int   `yaml:"floor"`
	Origin    *int   `yaml:"origin"`
	Dest      *int   `yaml:"destination"`
	Direction string `yaml:"direction"`
}

func (c *Command) UnmarshalYAML(node *yaml.Node) error {
	var raw rawCommand
	if err := node.Decode(&raw); err != nil {
		return err
	}
	c.Tick = raw.Tick

	switch raw.Do {
	case "car_call":
		if raw.Dest == nil {
			return fmt.Errorf("car_call at tick %d: destination is required", raw.Tick)
		}
		c.Value = CarCallCommand{Alias: raw.Alias, Destination: *raw.Dest, Origin: raw.Origin}
	case "hall_call":
		if raw.Floor == nil {
			return fmt.Errorf("hall_call at tick %d: floor is required", raw.Tick)
		}
		dir, err := parseDirection(raw.Direction)
		if err != nil {
			return fmt.Errorf("hall_call at tick %d: %w", raw.Tick, err)
		}
		c.Value = HallCallCommand{Alias: raw.Alias, Floor: *raw.Floor, Direction: dir}
	case "cancel":
		if raw.Alias == "" {
			return fmt.Errorf("cancel at tick %d: alias is required", raw.Tick)
		}
		c.Value = CancelCommand{Alias: raw.Alias}
	case "out_of_service":
		c.Value = OutOfServiceCommand{}
	case "return_to_service":
		c.Value = ReturnToServiceCommand{}
	default:
		return fmt.Errorf("unknown scenario command %q at tick %d", raw.Do, raw.Tick)
	}
	return nil
}

func parseDirection(s string) (liftstate.Direction, error) {
	switch s {
	case "UP":
		return liftstate.Up, nil
	case "DOWN":
		return liftstate.Down, nil
	default:
		return liftstate.DirIdle, fmt.Errorf("direction must be UP or DOWN, got %q", s)
	}
}
