// Package reactive implements observable signals with an atomic batch boundary.
//
// Change notifications raised inside a batch are queued and delivered once,
// in first-raised order, when the outermost batch returns. A Runtime is not
// safe for concurrent use.
package reactive

import (
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reactive = (*Runtime)(nil)

// maxFlushRounds bounds how many times subscribers may re-trigger changes
// while a batch is being flushed.
const maxFlushRounds = 100

// Runtime owns the batch depth, the pending notification queue and the
// observation tracking stack.
type Runtime struct {
	depth    int
	pending  []*Atom
	tracking []*trackFrame
}

type trackFrame struct {
	seen    map[*Atom]struct{}
	signals []ports.Signal
}

// New creates a new Runtime.
func New() *Runtime {
	return &Runtime{}
}

// NewSignal creates an Atom bound to rt.
func (rt *Runtime) NewSignal(name string) ports.Signal {
	return &Atom{rt: rt, name: name}
}

// Batch runs fn with notifications deferred. Pending notifications are
// flushed when the outermost batch exits, including when fn returns an error
// or panics. If subscribers do not settle, Batch returns
// domain.ErrRunawaySubscribers unless fn already failed.
func (rt *Runtime) Batch(fn func() error) (err error) {
	rt.depth++
	defer func() {
		rt.depth--
		if rt.depth == 0 {
			if ferr := rt.flush(); ferr != nil && err == nil {
				err = ferr
			}
		}
	}()
	return fn()
}

// InBatch reports whether a batch is open.
func (rt *Runtime) InBatch() bool {
	return rt.depth > 0
}

// Track runs fn and returns every signal observed during it.
func (rt *Runtime) Track(fn func()) []ports.Signal {
	frame := &trackFrame{seen: make(map[*Atom]struct{})}
	rt.tracking = append(rt.tracking, frame)
	defer func() {
		rt.tracking = rt.tracking[:len(rt.tracking)-1]
	}()

	fn()
	return frame.signals
}

func (rt *Runtime) observe(a *Atom) bool {
	if len(rt.tracking) == 0 {
		return false
	}
	frame := rt.tracking[len(rt.tracking)-1]
	if _, ok := frame.seen[a]; !ok {
		frame.seen[a] = struct{}{}
		frame.signals = append(frame.signals, a)
	}
	return true
}

func (rt *Runtime) enqueue(a *Atom) {
	if a.queued {
		return
	}
	a.queued = true
	rt.pending = append(rt.pending, a)
}

// flush delivers queued notifications. Changes raised by subscribers are
// queued behind the current round.
func (rt *Runtime) flush() error {
	rt.depth++
	defer func() { rt.depth-- }()

	for round := 0; len(rt.pending) > 0; round++ {
		pending := rt.pending
		rt.pending = nil
		for _, a := range pending {
			a.queued = false
		}
		if round == maxFlushRounds {
			names := make([]string, 0, len(pending))
			for _, a := range pending {
				names = append(names, a.name)
			}
			err := zerr.With(zerr.Wrap(domain.ErrRunawaySubscribers, "failed to flush batch"), "rounds", maxFlushRounds)
			return zerr.With(err, "dropped", names)
		}
		for _, a := range pending {
			a.notify()
		}
	}
	return nil
}
