package reactive

import "go.trai.ch/grove/internal/core/ports"

var _ ports.Signal = (*Atom)(nil)

// Atom is a signal carrying no value, only the fact that something changed.
type Atom struct {
	rt     *Runtime
	name   string
	subs   []*subscription
	queued bool
}

type subscription struct {
	fn        func()
	cancelled bool
}

// Name returns the debug name of the atom.
func (a *Atom) Name() string {
	return a.name
}

// ReportObserved registers a with the innermost Track scope, if any.
func (a *Atom) ReportObserved() bool {
	return a.rt.observe(a)
}

// ReportChanged queues a notification for the subscribers of a.
// Outside a batch it behaves like a single-statement batch; a runaway flush
// is then visible only through the Batch that wraps the caller.
func (a *Atom) ReportChanged() {
	_ = a.rt.Batch(func() error {
		a.rt.enqueue(a)
		return nil
	})
}

// Subscribe registers fn to run after every delivered change.
func (a *Atom) Subscribe(fn func()) func() {
	sub := &subscription{fn: fn}
	a.subs = append(a.subs, sub)
	return func() {
		if sub.cancelled {
			return
		}
		sub.cancelled = true
		for i, s := range a.subs {
			if s == sub {
				a.subs = append(a.subs[:i], a.subs[i+1:]...)
				return
			}
		}
	}
}

func (a *Atom) notify() {
	subs := make([]*subscription, len(a.subs))
	copy(subs, a.subs)
	for _, s := range subs {
		if !s.cancelled {
			s.fn()
		}
	}
}
