// Package chops has non-blocking channel operations and
// coroutine-style iteration. The animation driver closes and
// polls its skip channel with them, and trees hand out their
// in-order keys through CoIterate.
package chops

import (
	"runtime"
	"strings"
)

// Status is the outcome of a non-blocking receive.
type Status int

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case Closed:
		return "Closed"
	case Blocked:
		return "Blocked"
	default:
		return "<invalid chops.Status>"
	}
}

const (
	// A value was received.
	Ok Status = iota
	// The channel is closed and drained.
	Closed
	// Nothing is ready yet.
	Blocked
)

// Result holds what TryRecv saw.
type Result[T any] struct {
	value  T
	status Status
}

// Get returns the received value and the status. The value
// is only meaningful when the status is Ok.
func (r Result[T]) Get() (T, Status) {
	return r.value, r.status
}

const doubleCloseMsg = "close of closed channel"

// TryRecv receives from ch if it can do so without blocking.
func TryRecv[T any](ch <-chan T) Result[T] {
	select {
	case x, ok := <-ch:
		if !ok {
			return Result[T]{status: Closed}
		}
		return Result[T]{value: x, status: Ok}
	default:
		return Result[T]{status: Blocked}
	}
}

// TryClose closes ch unless it is already closed. It returns
// true only for the call that actually closed it, so several
// goroutines may race to close a signal channel safely.
func TryClose[T any](ch chan<- T) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, isRuntime := r.(runtime.Error)
		if isRuntime && strings.Contains(err.Error(), doubleCloseMsg) {
			ok = false
		} else {
			panic(r)
		}
	}()
	close(ch)
	ok = true
	return
}
