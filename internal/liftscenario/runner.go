package liftscenario

import (
	"fmt"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftengine"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftrequest"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

// Runner feeds scenario commands into a controller/engine pair and drives
// the tick loop. Aliases let later commands cancel requests made earlier.
type Runner struct {
	ctrl    liftsched.Controller
	eng     *liftengine.Engine
	seq     liftrequest.Sequence
	aliases map[string]uint64
	byTick  map[int][]Command
}

func NewRunner(ctrl liftsched.Controller, eng *liftengine.Engine, commands []Command) *Runner {
	byTick := make(map[int][]Command)
	for _, cmd := range commands {
		byTick[cmd.Tick] = append(byTick[cmd.Tick], cmd)
	}
	return &Runner{
		ctrl:    ctrl,
		eng:     eng,
		aliases: make(map[string]uint64),
		byTick:  byTick,
	}
}

// Run advances the simulation by the given number of ticks, applying each
// command just before the tick it is pinned to. Commands pinned past the
// end of the run never fire.
func (r *Runner) Run(ticks int) (liftengine.State, error) {
	state := r.eng.CurrentState()
	for i := 0; i < ticks; i++ {
		for _, cmd := range r.byTick[int(r.eng.CurrentTick())] {
			if err := r.apply(cmd); err != nil {
				return state, err
			}
		}
		var err error
		state, err = r.eng.Tick()
		if err != nil {
			return state, err
		}
	}
	return state, nil
}

func (r *Runner) apply(cmd Command) error {
	switch v := cmd.Value.(type) {
	case CarCallCommand:
		var req liftrequest.Request
		if v.Origin != nil {
			req = liftrequest.NewCarCallBetween(&r.seq, *v.Origin, v.Destination)
		} else {
			req = liftrequest.NewCarCall(&r.seq, v.Destination)
		}
		r.remember(v.Alias, req.ID)
		r.ctrl.AddRequest(req)
		logger.GetLogger().Info().Uint64("id", req.ID).Int("destination", v.Destination).Msg("scenario: car call")
	case HallCallCommand:
		req, err := liftrequest.NewHallCall(&r.seq, v.Floor, v.Direction)
		if err != nil {
			return fmt.Errorf("scenario hall call at tick %d: %w", cmd.Tick, err)
		}
		r.remember(v.Alias, req.ID)
		r.ctrl.AddRequest(req)
		logger.GetLogger().Info().Uint64("id", req.ID).Int("floor", v.Floor).Str("direction", v.Direction.String()).Msg("scenario: hall call")
	case CancelCommand:
		id, known := r.aliases[v.Alias]
		if !known || !r.ctrl.CancelRequest(id) {
			// Cancelling a finished or unknown request is a no-op, the
			// scenario keeps running.
			logger.GetLogger().Warn().Str("alias", v.Alias).Msg("scenario: cancel had no effect")
			return nil
		}
		logger.GetLogger().Info().Str("alias", v.Alias).Uint64("id", id).Msg("scenario: cancelled")
	case OutOfServiceCommand:
		r.eng.SetOutOfService()
	case ReturnToServiceCommand:
		r.eng.ReturnToService()
	default:
		return fmt.Errorf("unhandled scenario command %s", cmd.CommandType())
	}
	return nil
}

func (r *Runner) remember(alias string, id uint64) {
	if alias != "" {
		r.aliases[alias] = id
	}
}
