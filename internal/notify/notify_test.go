package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/modalkit/modalkit/internal/input/mode"
)

// collector records delivered modes for assertions.
type collector struct {
	mu    sync.Mutex
	modes []mode.Mode
}

func (c *collector) ModeChanged(m mode.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modes = append(c.modes, m)
}

func (c *collector) snapshot() []mode.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]mode.Mode, len(c.modes))
	copy(out, c.modes)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNotifierDeliversInOrder(t *testing.T) {
	n := New()
	defer n.Close()

	c := &collector{}
	n.Attach(c)

	want := []mode.Mode{mode.Insert, mode.Normal, mode.Visual, mode.Normal}
	for _, m := range want {
		n.Publish(m)
	}

	waitFor(t, func() bool { return len(c.snapshot()) == len(want) })

	got := c.snapshot()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNotifierDetach(t *testing.T) {
	n := New()
	defer n.Close()

	c := &collector{}
	detach := n.Attach(c)

	n.Publish(mode.Insert)
	waitFor(t, func() bool { return len(c.snapshot()) == 1 })

	detach()
	n.Publish(mode.Normal)

	// A detached sink receives nothing more.
	time.Sleep(50 * time.Millisecond)
	if got := c.snapshot(); len(got) != 1 {
		t.Errorf("detached sink received %d deliveries, want 1", len(got))
	}
}

func TestNotifierCloseDrains(t *testing.T) {
	n := New()

	c := &collector{}
	n.Attach(c)

	n.Publish(mode.Insert)
	n.Publish(mode.Normal)
	n.Close()

	if got := c.snapshot(); len(got) != 2 {
		t.Errorf("close drained %d deliveries, want 2", len(got))
	}
}

func TestNotifierCloseIsIdempotent(t *testing.T) {
	n := New()
	n.Close()
	n.Close()

	// Publishing after close is a no-op rather than a panic.
	n.Publish(mode.Insert)
}

func TestNotifierPublishNeverBlocks(t *testing.T) {
	n := New(WithBufferSize(1))
	defer n.Close()

	// Attach a sink that blocks until released so the buffer fills.
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	n.Attach(SinkFunc(func(m mode.Mode) {
		once.Do(func() { close(started) })
		<-release
	}))

	n.Publish(mode.Insert)
	<-started

	// These must return immediately even though delivery is stuck.
	doneCh := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			n.Publish(mode.Normal)
		}
		close(doneCh)
	}()

	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full buffer")
	}
	close(release)
}

func TestNotifierCallback(t *testing.T) {
	n := New()
	defer n.Close()

	c := &collector{}
	n.Attach(c)

	cb := n.Callback()
	cb(mode.Normal, mode.Insert)

	waitFor(t, func() bool { return len(c.snapshot()) == 1 })
	if got := c.snapshot(); got[0] != mode.Insert {
		t.Errorf("callback delivered %v, want %v", got[0], mode.Insert)
	}
}
