// liftpanel drives a simulated lift interactively: keys file requests
// while a wall-clock ticker advances the engine. The clock lives here
// only; the simulation itself stays purely tick-based.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftengine"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftrequest"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

type keyEvent struct {
	ch  rune
	key keyboard.Key
}

func main() {
	Logger := logger.GetLoggerConfigured(logger.LevelFromEnv(zerolog.InfoLevel))

	maxFloor := flag.Int("floors", 9, "Top floor; the panel serves floors 0 through this (max 9)")
	strategy := flag.String("strategy", string(liftsched.NearestRequestRouting), "Controller strategy")
	tickPeriod := flag.Duration("tick", 500*time.Millisecond, "Wall-clock duration of one tick")
	flag.Parse()

	if *maxFloor < 1 || *maxFloor > 9 {
		Logger.Error().Int("floors", *maxFloor).Msg("Top floor must be between 1 and 9")
		os.Exit(1)
	}

	ctrl, err := liftsched.New(liftsched.Strategy(*strategy))
	if err != nil {
		Logger.Error().Err(err).Msg("Could not create controller")
		os.Exit(1)
	}
	eng, err := liftengine.NewBuilder().Controller(ctrl).Floors(0, *maxFloor).Build()
	if err != nil {
		Logger.Error().Err(err).Msg("Could not build engine")
		os.Exit(1)
	}

	if err := keyboard.Open(); err != nil {
		Logger.Error().Err(err).Msg("Could not open keyboard")
		os.Exit(1)
	}
	defer keyboard.Close()

	Logger.Info().Msg("Keys: 0-9 car call, u/d hall call at current floor, o out of service, r return, q quit")

	events := make(chan keyEvent)
	go func() {
		defer close(events)
		for {
			ch, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			events <- keyEvent{ch: ch, key: key}
		}
	}()

	var seq liftrequest.Sequence
	ticker := time.NewTicker(*tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			state, err := eng.Tick()
			if err != nil {
				Logger.Error().Err(err).Msg("Simulation aborted")
				os.Exit(1)
			}
			Logger.Info().
				Uint64("tick", state.Tick).
				Int("floor", state.Floor).
				Str("status", state.Status.String()).
				Int("active", len(ctrl.Requests())).
				Msg("tick")
		case ev, open := <-events:
			if !open || ev.ch == 'q' || ev.key == keyboard.KeyEsc {
				Logger.Info().Msg("Bye")
				return
			}
			handleKey(ev.ch, ctrl, eng, &seq, *maxFloor)
		}
	}
}

func handleKey(ch rune, ctrl liftsched.Controller, eng *liftengine.Engine, seq *liftrequest.Sequence, maxFloor int) {
	Logger := logger.GetLogger()
	switch {
	case ch >= '0' && ch <= '9':
		floor := int(ch - '0')
		if floor > maxFloor {
			Logger.Warn().Int("floor", floor).Msg("No such floor")
			return
		}
		ctrl.AddRequest(liftrequest.NewCarCall(seq, floor))
		Logger.Info().Int("floor", floor).Msg("Car call")
	case ch == 'u' || ch == 'd':
		dir := liftstate.Up
		if ch == 'd' {
			dir = liftstate.Down
		}
		req, err := liftrequest.NewHallCall(seq, eng.CurrentState().Floor, dir)
		if err != nil {
			Logger.Warn().Err(err).Msg("Hall call rejected")
			return
		}
		ctrl.AddRequest(req)
		Logger.Info().Int("floor", req.Floor).Str("direction", dir.String()).Msg("Hall call")
	case ch == 'o':
		eng.SetOutOfService()
	case ch == 'r':
		eng.ReturnToService()
	}
}
