package liftsched

import (
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftrequest"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

// nearestController always heads for the pending request whose target floor
// is closest to the current floor, regardless of travel direction. It may
// retarget between decisions; equidistant candidates tie-break on insertion
// order.
type nearestController struct {
	book requestBook
}

func newNearestController() *nearestController {
	return &nearestController{book: newRequestBook()}
}

func (c *nearestController) AddRequest(r liftrequest.Request) {
	c.book.add(r)
	logger.GetLogger().Debug().
		Uint64("id", r.ID).
		Str("type", r.Type.String()).
		Int("target", r.TargetFloor()).
		Msg("request queued")
}

func (c *nearestController) CancelRequest(id uint64) bool {
	return c.book.cancel(id)
}

func (c *nearestController) Requests() []liftrequest.Request {
	return c.book.snapshot()
}

func (c *nearestController) TakeOutOfService() {
	c.book.cancelAll()
	c.book.outOfService = true
}

func (c *nearestController) ReturnToService() {
	c.book.outOfService = false
}

func (c *nearestController) DecideAction(floor int, status liftstate.LiftStatus) liftstate.Action {
	if c.book.outOfService {
		return liftstate.ActionIdle
	}

	if status == liftstate.DoorsOpen {
		c.completeAt(floor)
		return liftstate.CloseDoor
	}

	target, ok := c.nearestTarget(floor)

	if status == liftstate.DoorsClosing {
		if ok && target == floor {
			return liftstate.OpenDoor // reopen for a call at this floor
		}
		return liftstate.CloseDoor
	}

	if !ok {
		return liftstate.ActionIdle
	}

	c.retarget(target)

	switch {
	case target > floor:
		if status == liftstate.MovingDown {
			return liftstate.ActionIdle // stop before reversing
		}
		return liftstate.MoveUp
	case target < floor:
		if status == liftstate.MovingUp {
			return liftstate.ActionIdle
		}
		return liftstate.MoveDown
	default:
		return liftstate.OpenDoor
	}
}

// nearestTarget picks the pending target with the smallest absolute
// distance from floor; the earliest-created request wins a tie.
func (c *nearestController) nearestTarget(floor int) (int, bool) {
	best, bestDist := 0, -1
	for _, r := range c.book.active() {
		dist := r.TargetFloor() - floor
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = r.TargetFloor(), dist
		}
	}
	return best, bestDist >= 0
}

// retarget marks every pending request for the selected floor as assigned
// and requeues requests assigned to a floor that is no longer the target.
func (c *nearestController) retarget(target int) {
	for _, r := range c.book.active() {
		switch {
		case r.TargetFloor() == target && r.State == liftrequest.Queued:
			c.book.setState(r.ID, liftrequest.Assigned)
		case r.TargetFloor() != target && r.State == liftrequest.Assigned:
			c.book.setState(r.ID, liftrequest.Queued)
		}
	}
}

// completeAt finishes every request targeting the floor the doors just
// opened at.
func (c *nearestController) completeAt(floor int) {
	for _, r := range c.book.active() {
		if r.TargetFloor() != floor {
			continue
		}
		if r.State == liftrequest.Queued {
			c.book.setState(r.ID, liftrequest.Assigned)
		}
		if c.book.requests[r.ID].State == liftrequest.Assigned {
			c.book.setState(r.ID, liftrequest.Serving)
		}
		c.book.setState(r.ID, liftrequest.Completed)
		logger.GetLogger().Info().Uint64("id", r.ID).Int("floor", floor).Msg("request completed")
	}
}
