package liftsched

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftrequest"
)

// requestBook is the request bookkeeping shared by both controllers:
// insertion-ordered storage, lifecycle transitions, cancellation and the
// out-of-service flag.
type requestBook struct {
	order        []uint64
	requests     map[uint64]liftrequest.Request
	outOfService bool
}

func newRequestBook() requestBook {
	return requestBook{requests: make(map[uint64]liftrequest.Request)}
}

func (b *requestBook) add(r liftrequest.Request) {
	if r.State == liftrequest.Created {
		r = mustTransition(r, liftrequest.Queued)
	}
	if _, exists := b.requests[r.ID]; !exists {
		b.order = append(b.order, r.ID)
	}
	b.requests[r.ID] = r
}

func (b *requestBook) cancel(id uint64) bool {
	r, ok := b.requests[id]
	if !ok || r.IsTerminal() {
		return false
	}
	b.requests[id] = mustTransition(r, liftrequest.Cancelled)
	return true
}

func (b *requestBook) cancelAll() {
	for id, r := range b.requests {
		if !r.IsTerminal() {
			b.requests[id] = mustTransition(r, liftrequest.Cancelled)
		}
	}
}

// setState advances one request and stores the replacement value.
func (b *requestBook) setState(id uint64, to liftrequest.RequestState) {
	b.requests[id] = mustTransition(b.requests[id], to)
}

// active returns the non-terminal requests in insertion order.
func (b *requestBook) active() []liftrequest.Request {
	out := make([]liftrequest.Request, 0, len(b.order))
	for _, id := range b.order {
		if r := b.requests[id]; !r.IsTerminal() {
			out = append(out, r)
		}
	}
	return out
}

// snapshot deep-copies the active set so callers can never alias the
// controller's book.
func (b *requestBook) snapshot() []liftrequest.Request {
	active := b.active()
	out := make([]liftrequest.Request, 0, len(active))
	if err := deepcopy.Copy(&out, &active); err != nil {
		panic(fmt.Sprintf("liftsched: copying request snapshot: %v", err))
	}
	return out
}

// mustTransition panics on a lifecycle violation: by contract that is a
// controller defect, never recoverable input.
func mustTransition(r liftrequest.Request, to liftrequest.RequestState) liftrequest.Request {
	next, err := r.Transition(to)
	if err != nil {
		panic(fmt.Sprintf("liftsched: %v", err))
	}
	return next
}
