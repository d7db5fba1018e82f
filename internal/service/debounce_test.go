package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var runs int32
	var last int32
	for i := int32(1); i <= 5; i++ {
		i := i
		d.Call(func() {
			atomic.AddInt32(&runs, 1)
			atomic.StoreInt32(&last, i)
		})
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) == 1
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, int32(5), atomic.LoadInt32(&last))

	// stays at one run once quiescent
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&runs))
}

func TestDebouncer_Flush(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var runs int32
	d.Call(func() { atomic.AddInt32(&runs, 1) })
	d.Flush()
	require.Equal(t, int32(1), atomic.LoadInt32(&runs))

	// flushing again is a no-op, the pending function was consumed
	d.Flush()
	require.Equal(t, int32(1), atomic.LoadInt32(&runs))
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var runs int32
	d.Call(func() { atomic.AddInt32(&runs, 1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, int32(0), atomic.LoadInt32(&runs))
}
