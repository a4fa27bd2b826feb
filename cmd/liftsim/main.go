package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftconfig"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftmeta"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftscenario"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftutils"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

func main() {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()
	Logger := logger.GetLoggerConfigured(logger.LevelFromEnv(zerolog.InfoLevel))

	configPath, ticks, ticksSet := liftutils.ProcessCmdArgs()

	// Starting Programme
	Logger.Info().Msg("Starting Lift Simulator")

	cfg, err := liftconfig.Load(configPath)
	if err != nil {
		Logger.Error().Err(err).Msg("Could not load config")
		os.Exit(1)
	}
	if !ticksSet && cfg.Ticks > 0 {
		ticks = cfg.Ticks
	}

	ctrl, err := liftsched.New(cfg.ControllerStrategy)
	if err != nil {
		Logger.Error().Err(err).Msg("Could not create controller")
		os.Exit(1)
	}
	eng, err := cfg.Builder().Controller(ctrl).Build()
	if err != nil {
		Logger.Error().Err(err).Msg("Could not build engine")
		os.Exit(1)
	}

	metaData := liftmeta.RunMetaData{
		Name:     cfg.Name,
		Strategy: cfg.ControllerStrategy,
		MinFloor: cfg.MinFloor,
		MaxFloor: cfg.MaxFloor,
		Ticks:    ticks,
	}
	Logger.Info().Msgf("Simulation: %v", metaData.String())

	runner := liftscenario.NewRunner(ctrl, eng, cfg.Scenario)
	finalState, err := runner.Run(ticks)
	if err != nil {
		Logger.Error().Err(err).Msg("Simulation aborted")
		os.Exit(1)
	}

	Logger.Info().
		Int("floor", finalState.Floor).
		Str("status", finalState.Status.String()).
		Uint64("tick", finalState.Tick).
		Int("active_requests", len(ctrl.Requests())).
		Msg("Simulation complete")
}
