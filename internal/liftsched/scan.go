package liftsched

import (
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftrequest"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

// scanController commits to a travel direction and services everything
// ahead of it in that direction before reversing (the SCAN/LOOK family).
// Hall calls for the opposite direction stay queued until the scan
// reverses at or beyond their floor.
type scanController struct {
	book requestBook
	dir  liftstate.Direction // committed travel direction
}

func newScanController() *scanController {
	return &scanController{book: newRequestBook()}
}

func (c *scanController) AddRequest(r liftrequest.Request) {
	c.book.add(r)
	logger.GetLogger().Debug().
		Uint64("id", r.ID).
		Str("type", r.Type.String()).
		Int("target", r.TargetFloor()).
		Str("direction", r.Direction.String()).
		Msg("request queued")
}

func (c *scanController) CancelRequest(id uint64) bool {
	return c.book.cancel(id)
}

func (c *scanController) Requests() []liftrequest.Request {
	return c.book.snapshot()
}

func (c *scanController) TakeOutOfService() {
	c.book.cancelAll()
	c.book.outOfService = true
	c.dir = liftstate.DirIdle
}

func (c *scanController) ReturnToService() {
	c.book.outOfService = false
}

func (c *scanController) DecideAction(floor int, status liftstate.LiftStatus) liftstate.Action {
	if c.book.outOfService {
		return liftstate.ActionIdle
	}

	if status == liftstate.DoorsOpen {
		c.completeAt(floor)
		c.refreshAssignments(floor)
		return liftstate.CloseDoor
	}

	if status == liftstate.DoorsClosing {
		if c.hasServeableAt(floor) {
			return liftstate.OpenDoor
		}
		return liftstate.CloseDoor
	}

	if len(c.book.active()) == 0 {
		c.dir = liftstate.DirIdle
		return liftstate.ActionIdle
	}

	// Adopt a direction toward the work when uncommitted.
	if c.dir == liftstate.DirIdle {
		switch {
		case c.hasServeableAt(floor):
			// serve in place before committing anywhere
		case c.requestsAbove(floor):
			c.dir = liftstate.Up
		case c.requestsBelow(floor):
			c.dir = liftstate.Down
		}
	}

	if c.hasServeableAt(floor) {
		return liftstate.OpenDoor
	}

	c.refreshAssignments(floor)

	switch c.dir {
	case liftstate.Up:
		if c.requestsAbove(floor) {
			return adapt(status, liftstate.MoveUp)
		}
		c.dir = liftstate.Down // reverse: remaining work is behind
		if c.requestsBelow(floor) {
			c.refreshAssignments(floor)
			return adapt(status, liftstate.MoveDown)
		}
	case liftstate.Down:
		if c.requestsBelow(floor) {
			return adapt(status, liftstate.MoveDown)
		}
		c.dir = liftstate.Up
		if c.requestsAbove(floor) {
			c.refreshAssignments(floor)
			return adapt(status, liftstate.MoveUp)
		}
	}

	c.dir = liftstate.DirIdle
	return liftstate.ActionIdle
}

// adapt keeps a decision legal for the current status: reversing while
// still moving takes a one-tick stop through IDLE first.
func adapt(status liftstate.LiftStatus, desired liftstate.Action) liftstate.Action {
	if desired == liftstate.MoveUp && status == liftstate.MovingDown {
		return liftstate.ActionIdle
	}
	if desired == liftstate.MoveDown && status == liftstate.MovingUp {
		return liftstate.ActionIdle
	}
	return desired
}

func (c *scanController) requestsAbove(floor int) bool {
	for _, r := range c.book.active() {
		if r.TargetFloor() > floor {
			return true
		}
	}
	return false
}

func (c *scanController) requestsBelow(floor int) bool {
	for _, r := range c.book.active() {
		if r.TargetFloor() < floor {
			return true
		}
	}
	return false
}

// serveable reports whether the request can be cleared by opening the
// doors at floor right now. Car calls always qualify at their destination;
// hall calls qualify when they match the committed direction, when the
// controller is uncommitted, or at the turnaround where nothing further
// lies ahead.
func (c *scanController) serveable(r liftrequest.Request, floor int) bool {
	if r.TargetFloor() != floor {
		return false
	}
	if r.Type == liftrequest.CarCall || c.dir == liftstate.DirIdle || r.Direction == c.dir {
		return true
	}
	switch c.dir {
	case liftstate.Up:
		return !c.requestsAbove(floor)
	case liftstate.Down:
		return !c.requestsBelow(floor)
	}
	return false
}

func (c *scanController) hasServeableAt(floor int) bool {
	for _, r := range c.book.active() {
		if c.serveable(r, floor) {
			return true
		}
	}
	return false
}

// eligible reports whether a request lies on the committed path and so may
// hold an assignment. Opposite-direction hall calls are deliberately not
// eligible: they stay queued until the scan comes back for them.
func (c *scanController) eligible(r liftrequest.Request, floor int) bool {
	switch c.dir {
	case liftstate.Up:
		return r.TargetFloor() >= floor &&
			(r.Type == liftrequest.CarCall || r.Direction == liftstate.Up)
	case liftstate.Down:
		return r.TargetFloor() <= floor &&
			(r.Type == liftrequest.CarCall || r.Direction == liftstate.Down)
	default:
		return r.TargetFloor() == floor
	}
}

func (c *scanController) refreshAssignments(floor int) {
	for _, r := range c.book.active() {
		eligible := c.eligible(r, floor)
		switch {
		case eligible && r.State == liftrequest.Queued:
			c.book.setState(r.ID, liftrequest.Assigned)
		case !eligible && r.State == liftrequest.Assigned:
			c.book.setState(r.ID, liftrequest.Queued)
		}
	}
}

func (c *scanController) completeAt(floor int) {
	for _, r := range c.book.active() {
		if !c.serveable(r, floor) {
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
