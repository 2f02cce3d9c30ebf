package watch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_DeliversLastEventOfBurst(t *testing.T) {
	var (
		count atomic.Int32
		mu    sync.Mutex
		got   ChangeEvent
	)
	d := NewDebouncer(50*time.Millisecond, func(ev ChangeEvent) {
		count.Add(1)
		mu.Lock()
		got = ev
		mu.Unlock()
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger(ChangeEvent{Path: fmt.Sprintf("income-%d.yml", i), ChangeType: "write"})
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load(), "expected one delivery for the burst")

	mu.Lock()
	assert.Equal(t, ChangeEvent{Path: "income-9.yml", ChangeType: "write"}, got)
	mu.Unlock()
}

func TestDebouncer_Stop(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func(ChangeEvent) {
		count.Add(1)
	})

	d.Trigger(ChangeEvent{Path: "tax.yml", ChangeType: "write"})
	d.Stop()
	d.Trigger(ChangeEvent{Path: "tax.yml", ChangeType: "write"})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), count.Load(), "no delivery after stop")
}
