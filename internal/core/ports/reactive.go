package ports

//go:generate go run go.uber.org/mock/mockgen -source=reactive.go -destination=mocks/mock_reactive.go -package=mocks

// Signal is an observable invalidation token.
type Signal interface {
	// Name returns the debug name given at creation.
	Name() string
	// ReportObserved records that the current reader depends on this signal.
	// It reports whether a tracking scope was active.
	ReportObserved() bool
	// ReportChanged notifies subscribers, deferred until the enclosing batch ends.
	ReportChanged()
	// Subscribe registers fn to run after each change. The returned func cancels it.
	Subscribe(fn func()) (cancel func())
}

// Reactive creates signals and provides the atomic mutation batch boundary.
type Reactive interface {
	// NewSignal creates a signal with a debug name.
	NewSignal(name string) Signal
	// Batch runs fn so that no change notification is delivered until the
	// outermost batch returns.
	Batch(fn func() error) error
	// Track runs fn and returns the signals reported observed during it, in
	// first-observed order.
	Track(fn func()) []Signal
}
