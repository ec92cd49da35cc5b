package render

import (
	"sync"

	"go.lepak.sg/bstviz/display"
	"golang.org/x/exp/constraints"
)

// Recorder keeps a copy of every frame it is given.
type Recorder[T constraints.Ordered] struct {
	mu     sync.Mutex
	frames []display.Frame[T]
}

func (r *Recorder[T]) Render(f display.Frame[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f.State = f.State.Clone()
	r.frames = append(r.frames, f)
	return nil
}

// Frames returns the recorded frames, oldest first.
func (r *Recorder[T]) Frames() []display.Frame[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]display.Frame[T], len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.frames)
}

// Last returns the newest frame. ok is false if nothing was recorded.
func (r *Recorder[T]) Last() (f display.Frame[T], ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.frames) == 0 {
		return
	}
	return r.frames[len(r.frames)-1], true
}

func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames = nil
}
