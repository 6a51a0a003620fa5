package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncer_CollapsesBursts(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var calls atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	require.Equal(t, int32(5), last.Load())
}

func TestDebouncer_ZeroDelayIsSynchronous(t *testing.T) {
	d := newDebouncer(0)

	ran := false
	d.Trigger(func() { ran = true })
	require.True(t, ran)
}

func TestDebouncer_FlushRunsPendingNow(t *testing.T) {
	d := newDebouncer(time.Hour)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Flush()
	require.Equal(t, int32(1), calls.Load())

	// no pending call left behind
	d.Flush()
	require.Equal(t, int32(1), calls.Load())
}
