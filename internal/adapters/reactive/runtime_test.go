package reactive_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grove/internal/adapters/reactive"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
)

func TestAtom_ReportChangedOutsideBatchNotifiesImmediately(t *testing.T) {
	rt := reactive.New()
	sig := rt.NewSignal("a")

	calls := 0
	sig.Subscribe(func() { calls++ })

	sig.ReportChanged()
	assert.Equal(t, 1, calls)
	assert.False(t, rt.InBatch())
}

func TestRuntime_BatchDefersAndDeduplicates(t *testing.T) {
	rt := reactive.New()
	a := rt.NewSignal("a")
	b := rt.NewSignal("b")

	var order []string
	a.Subscribe(func() { order = append(order, "a") })
	b.Subscribe(func() { order = append(order, "b") })

	err := rt.Batch(func() error {
		b.ReportChanged()
		a.ReportChanged()
		b.ReportChanged()
		assert.Empty(t, order, "no notification may escape an open batch")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, order)
}

func TestRuntime_NestedBatchFlushesOnce(t *testing.T) {
	rt := reactive.New()
	sig := rt.NewSignal("s")

	calls := 0
	sig.Subscribe(func() { calls++ })

	_ = rt.Batch(func() error {
		_ = rt.Batch(func() error {
			sig.ReportChanged()
			return nil
		})
		assert.Equal(t, 0, calls, "inner batch must not flush")
		sig.ReportChanged()
		return nil
	})

	assert.Equal(t, 1, calls)
}

func TestRuntime_BatchFlushesOnError(t *testing.T) {
	rt := reactive.New()
	sig := rt.NewSignal("s")

	calls := 0
	sig.Subscribe(func() { calls++ })

	boom := errors.New("boom")
	err := rt.Batch(func() error {
		sig.ReportChanged()
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.False(t, rt.InBatch())
}

func TestRuntime_BatchRecoversDepthOnPanic(t *testing.T) {
	rt := reactive.New()

	assert.Panics(t, func() {
		_ = rt.Batch(func() error {
			panic("extension failure")
		})
	})
	assert.False(t, rt.InBatch())
}

func TestRuntime_SubscriberChangesAreDelivered(t *testing.T) {
	rt := reactive.New()
	a := rt.NewSignal("a")
	b := rt.NewSignal("b")

	bCalls := 0
	a.Subscribe(func() { b.ReportChanged() })
	b.Subscribe(func() { bCalls++ })

	a.ReportChanged()
	assert.Equal(t, 1, bCalls)
}

func TestRuntime_RunawaySubscribersStop(t *testing.T) {
	rt := reactive.New()
	sig := rt.NewSignal("loop")

	calls := 0
	sig.Subscribe(func() {
		calls++
		sig.ReportChanged()
	})

	sig.ReportChanged()
	assert.Equal(t, 100, calls)
	assert.False(t, rt.InBatch())
}

func TestRuntime_BatchReportsRunawaySubscribers(t *testing.T) {
	rt := reactive.New()
	sig := rt.NewSignal("loop")
	quiet := rt.NewSignal("quiet")

	sig.Subscribe(func() { sig.ReportChanged() })
	quietCalls := 0
	quiet.Subscribe(func() { quietCalls++ })

	err := rt.Batch(func() error {
		sig.ReportChanged()
		quiet.ReportChanged()
		return nil
	})

	require.ErrorIs(t, err, domain.ErrRunawaySubscribers)
	assert.Equal(t, 1, quietCalls)
	assert.False(t, rt.InBatch())

	boom := errors.New("boom")
	err = rt.Batch(func() error {
		sig.ReportChanged()
		return boom
	})
	require.ErrorIs(t, err, boom, "the batch's own error wins")
	assert.NotErrorIs(t, err, domain.ErrRunawaySubscribers)
}

func TestAtom_SubscribeCancel(t *testing.T) {
	rt := reactive.New()
	sig := rt.NewSignal("s")

	calls := 0
	cancel := sig.Subscribe(func() { calls++ })
	sig.ReportChanged()
	cancel()
	cancel()
	sig.ReportChanged()

	assert.Equal(t, 1, calls)
}

func TestRuntime_Track(t *testing.T) {
	rt := reactive.New()
	a := rt.NewSignal("a")
	b := rt.NewSignal("b")

	assert.False(t, a.ReportObserved(), "observation outside Track is not recorded")

	var inner []ports.Signal
	outer := rt.Track(func() {
		assert.True(t, b.ReportObserved())
		inner = rt.Track(func() {
			a.ReportObserved()
		})
		a.ReportObserved()
		b.ReportObserved()
	})

	require.Len(t, outer, 2)
	assert.Equal(t, "b", outer[0].Name())
	assert.Equal(t, "a", outer[1].Name())
	require.Len(t, inner, 1)
	assert.Equal(t, "a", inner[0].Name())
}
