// Package liftsched holds the dispatch algorithms that decide the lift's
// action each tick. Controllers own the request lifecycle: they assign,
// serve, complete and cancel requests; the engine only ever sees actions.
package liftsched

import (
	"fmt"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftrequest"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftstate"
)

type Strategy string

const (
	NearestRequestRouting Strategy = "NEAREST_REQUEST_ROUTING"
	DirectionalScan       Strategy = "DIRECTIONAL_SCAN"
)

// Controller is the shared dispatch contract. Implementations are not safe
// for concurrent use; each controller belongs to exactly one engine.
type Controller interface {
	// AddRequest takes ownership of a request and queues it.
	AddRequest(r liftrequest.Request)

	// CancelRequest cancels an active request. Unknown or already-terminal
	// ids report false: cancellation racing with natural completion is
	// expected, not exceptional.
	CancelRequest(id uint64) bool

	// Requests returns a deep copy of the non-terminal request set.
	Requests() []liftrequest.Request

	// DecideAction picks the lift's next action given its current floor and
	// status. It re-evaluates the request set every tick.
	DecideAction(floor int, status liftstate.LiftStatus) liftstate.Action

	// TakeOutOfService cancels every active request and makes DecideAction
	// answer IDLE until ReturnToService.
	TakeOutOfService()

	// ReturnToService clears the out-of-service flag. Cancelled requests are
	// not resurrected.
	ReturnToService()
}

// New selects the concrete controller for a strategy.
func New(strategy Strategy) (Controller, error) {
	switch strategy {
	case NearestRequestRouting:
		return newNearestController(), nil
	case DirectionalScan:
		return newScanController(), nil
	default:
		return nil, fmt.Errorf("unknown controller strategy %q", strategy)
	}
}
