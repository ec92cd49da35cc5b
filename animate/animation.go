package animate

import (
	"context"
	"sync/atomic"

	uuid "github.com/satori/go.uuid"
)

// Animation is the handle for one replay started by Driver.Begin.
// It finishes when the record queue is drained, when the driver has no
// before snapshot, or when it is skipped.
type Animation struct {
	ID string

	done chan struct{}
	skip chan struct{}

	// looperDone is guarded by the driver's mutex. It is set by the
	// tick that ended the tick loop.
	looperDone bool

	skipped atomic.Bool
	frames  atomic.Int64
	err     error
}

func newAnimation() *Animation {
	return &Animation{
		ID:   uuid.NewV4().String(),
		done: make(chan struct{}),
		skip: make(chan struct{}),
	}
}

// Done returns a channel that is closed once the animation has
// finished and the final frame was rendered.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// Wait blocks until the animation finishes or ctx is canceled.
// It returns the first render error, if any.
func (a *Animation) Wait(ctx context.Context) error {
	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Skipped returns true if the animation was ended early by a skip.
func (a *Animation) Skipped() bool {
	return a.skipped.Load()
}

// Frames returns the number of records replayed so far. When an
// animation that was not skipped is done, this equals the number of
// records that were queued when it began.
func (a *Animation) Frames() int {
	return int(a.frames.Load())
}
