package engine

import (
	"context"
	"sync"
)

// Slot is the logical binding between a view and one category of in-flight
// request. At most one live call per slot: issuing into an occupied slot
// cancels the prior call first.
type Slot uint8

const (
	SlotFetch Slot = iota
	SlotSave
	SlotSearch
)

func (s Slot) String() string {
	switch s {
	case SlotFetch:
		return "fetch"
	case SlotSave:
		return "save"
	case SlotSearch:
		return "search"
	}
	return "unknown"
}

// Handle is one cancellable outgoing call. The effect that owns it must
// check Cancelled before dispatching the response; a cancelled call's result
// is discarded, success or failure.
type Handle struct {
	ctx    context.Context
	cancel context.CancelFunc
	slot   Slot
	o      *Orchestrator
}

func (h *Handle) Context() context.Context { return h.ctx }

// Cancelled reports whether this call was superseded or torn down.
func (h *Handle) Cancelled() bool { return h.ctx.Err() != nil }

// Done releases the slot if this handle still owns it. Call when the
// response has been fully handled.
func (h *Handle) Done() {
	h.o.mu.Lock()
	if h.o.active[h.slot] == h {
		delete(h.o.active, h.slot)
	}
	h.o.mu.Unlock()
	h.cancel()
}

// Orchestrator hands out at most one live cancellation handle per slot.
// Close cancels everything and poisons the orchestrator: handles issued
// afterwards are born cancelled, so late effects cannot dispatch.
type Orchestrator struct {
	mu     sync.Mutex
	parent context.Context
	stop   context.CancelFunc
	active map[Slot]*Handle
}

func NewOrchestrator() *Orchestrator {
	parent, stop := context.WithCancel(context.Background())
	return &Orchestrator{
		parent: parent,
		stop:   stop,
		active: make(map[Slot]*Handle),
	}
}

// Issue binds a fresh cancellation handle to slot, cancelling any prior
// uncompleted call there.
func (o *Orchestrator) Issue(slot Slot) *Handle {
	o.mu.Lock()
	defer o.mu.Unlock()
	if prev, ok := o.active[slot]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(o.parent)
	h := &Handle{ctx: ctx, cancel: cancel, slot: slot, o: o}
	o.active[slot] = h
	return h
}

// Cancel aborts the live call in slot, if any.
func (o *Orchestrator) Cancel(slot Slot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if h, ok := o.active[slot]; ok {
		h.cancel()
		delete(o.active, slot)
	}
}

// Close cancels every live call. Triggered by view unmount.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stop()
	for slot, h := range o.active {
		h.cancel()
		delete(o.active, slot)
	}
}
