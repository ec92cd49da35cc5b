package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bstviz/chops"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		el, st := chops.TryRecv(ch).Get()
		switch st {
		case chops.Ok:
			assert.Equal(t, datum, el)
		case chops.Closed:
			t.Errorf("channel closed early, expecting i=%d %v", i, datum)
		case chops.Blocked:
			t.Errorf("channel was empty, expecting i=%d %v", i, datum)
		}
	}

	switch el, st := chops.TryRecv(ch).Get(); st {
	case chops.Ok:
		t.Errorf("channel should be closed, but received: %v", el)
	case chops.Blocked:
		t.Error("at the end of draining, channel was empty but unclosed")
	}
}

// DrainBlocking is like Drain, but the producer may still be
// sending. Each receive, including the final one that expects
// ch to be closed, waits at most timeout.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining (blocking): expecting %v", data)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	reset := func() {
		if !timer.Stop() {
			<-timer.C
		}
		timer.Reset(timeout)
	}

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out after %s, expecting i=%d %v", timeout, i, datum)
			return
		}
		reset()
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Errorf("timed out after %s waiting for channel to close", timeout)
	}
}
