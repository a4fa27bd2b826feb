// Package liftconfig loads and validates simulation parameters from YAML.
// Every tick-count knob is validated up front so a bad file fails before
// the first tick rather than mid-run.
package liftconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftengine"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftscenario"
)

type Config struct {
	Name string `yaml:"name"`

	MinFloor     int  `yaml:"minFloor"`
	MaxFloor     int  `yaml:"maxFloor"`
	Lifts        int  `yaml:"lifts"`
	InitialFloor *int `yaml:"initialFloor"`

	TravelTicksPerFloor   int `yaml:"travelTicksPerFloor"`
	DoorTransitionTicks   int `yaml:"doorTransitionTicks"`
	DoorDwellTicks        int `yaml:"doorDwellTicks"`
	DoorReopenWindowTicks int `yaml:"doorReopenWindowTicks"`

	ControllerStrategy liftsched.Strategy     `yaml:"controllerStrategy"`
	IdleParkingMode    liftengine.ParkingMode `yaml:"idleParkingMode"`
	HomeFloor          *int                   `yaml:"homeFloor"`
	IdleTimeoutTicks   int                    `yaml:"idleTimeoutTicks"`

	Ticks    int                    `yaml:"ticks"`
	Scenario []liftscenario.Command `yaml:"scenario"`
}

// Load reads a config file, fills in defaults and validates the result.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Lifts == 0 {
		c.Lifts = 1
	}
	if c.TravelTicksPerFloor == 0 {
		c.TravelTicksPerFloor = 1
	}
	if c.DoorTransitionTicks == 0 {
		c.DoorTransitionTicks = 1
	}
	if c.DoorDwellTicks == 0 {
		c.DoorDwellTicks = 1
	}
	if c.ControllerStrategy == "" {
		c.ControllerStrategy = liftsched.NearestRequestRouting
	}
	if c.IdleParkingMode == "" {
		c.IdleParkingMode = liftengine.StayAtCurrentFloor
	}
}

func (c *Config) Validate() error {
	if c.MinFloor >= c.MaxFloor {
		return fmt.Errorf("minFloor %d must be below maxFloor %d", c.MinFloor, c.MaxFloor)
	}
	if c.Lifts != 1 {
		return fmt.Errorf("lifts must be 1, got %d", c.Lifts)
	}
	if c.InitialFloor != nil && (*c.InitialFloor < c.MinFloor || *c.InitialFloor > c.MaxFloor) {
		return fmt.Errorf("initialFloor %d outside [%d, %d]", *c.InitialFloor, c.MinFloor, c.MaxFloor)
	}
	if c.TravelTicksPerFloor < 1 {
		return fmt.Errorf("travelTicksPerFloor must be at least 1, got %d", c.TravelTicksPerFloor)
	}
	if c.DoorTransitionTicks < 1 {
		return fmt.Errorf("doorTransitionTicks must be at least 1, got %d", c.DoorTransitionTicks)
	}
	if c.DoorDwellTicks < 1 {
		return fmt.Errorf("doorDwellTicks must be at least 1, got %d", c.DoorDwellTicks)
	}
	if c.DoorReopenWindowTicks < 0 || c.DoorReopenWindowTicks > c.DoorTransitionTicks {
		return fmt.Errorf("doorReopenWindowTicks %d outside [0, %d]", c.DoorReopenWindowTicks, c.DoorTransitionTicks)
	}
	switch c.ControllerStrategy {
	case liftsched.NearestRequestRouting, liftsched.DirectionalScan:
	default:
		return fmt.Errorf("unknown controllerStrategy %q", c.ControllerStrategy)
	}
	switch c.IdleParkingMode {
	case liftengine.StayAtCurrentFloor, liftengine.ParkToHomeFloor:
	default:
		return fmt.Errorf("unknown idleParkingMode %q", c.IdleParkingMode)
	}
	if c.HomeFloor != nil && (*c.HomeFloor < c.MinFloor || *c.HomeFloor > c.MaxFloor) {
		return fmt.Errorf("homeFloor %d outside [%d, %d]", *c.HomeFloor, c.MinFloor, c.MaxFloor)
	}
	if c.IdleParkingMode == liftengine.ParkToHomeFloor && c.IdleTimeoutTicks < 1 {
		return fmt.Errorf("idleTimeoutTicks must be at least 1 under %s", liftengine.ParkToHomeFloor)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", c.Ticks)
	}
	return nil
}

// Builder translates the config into an engine builder; the caller still
// supplies the controller.
func (c *Config) Builder() *liftengine.Builder {
	b := liftengine.NewBuilder().
		Floors(c.MinFloor, c.MaxFloor).
		TravelTicksPerFloor(c.TravelTicksPerFloor).
		DoorTransitionTicks(c.DoorTransitionTicks).
		DoorDwellTicks(c.DoorDwellTicks).
		DoorReopenWindowTicks(c.DoorReopenWindowTicks).
		IdleTimeoutTicks(c.IdleTimeoutTicks).
		IdleParking(c.IdleParkingMode)
	if c.InitialFloor != nil {
		b = b.InitialFloor(*c.InitialFloor)
	}
	if c.HomeFloor != nil {
		b = b.HomeFloor(*c.HomeFloor)
	}
	return b
}
