package ui_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ramadan/internal/ui"
)

func TestDebouncer_CoalescesRapidCalls(t *testing.T) {
	d := ui.NewDebouncer(50 * time.Millisecond)
	var fired atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Schedule(func() {
			fired.Add(1)
			last.Store(n)
		})
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 10*time.Millisecond, "only the last scheduled call fires")
	assert.Equal(t, int32(5), last.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := ui.NewDebouncer(30 * time.Millisecond)
	var fired atomic.Int32

	d.Schedule(func() { fired.Add(1) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestDebouncer_FlushRunsImmediately(t *testing.T) {
	d := ui.NewDebouncer(time.Minute)
	var pending, flushed atomic.Int32

	d.Schedule(func() { pending.Add(1) })
	d.Flush(func() { flushed.Add(1) })

	assert.Equal(t, int32(1), flushed.Load())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, pending.Load(), "the pending call was cancelled by the flush")
}
