// Package animate replays the keys a tree operation recorded as a
// timed sequence of highlighted frames.
//
// The controller calls Driver.Save right before a structural operation,
// runs the operation (which fills the tree's record queue), and then
// calls Driver.Begin. Every tick dequeues one record, highlights the
// matching node in the saved snapshot and renders it. When the queue
// is empty, or the animation is skipped, the driver switches to the
// tree's live state and renders a final frame.
//
// Only one animation may be in flight. Begin returns ErrBusy instead
// of queueing.
package animate

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/relistan/go-director"
	"github.com/sirupsen/logrus"
	"go.lepak.sg/bstviz/chops"
	"go.lepak.sg/bstviz/display"
	"golang.org/x/exp/constraints"
)

// DefaultInterval is the time between two animation frames.
const DefaultInterval = 500 * time.Millisecond

// ErrBusy is returned by Begin and Render while an animation is in flight.
var ErrBusy = errors.New("an animation is already in flight")

var (
	// returned from a tick to stop the looper
	errDrained    = errors.New("record queue drained")
	errNoSnapshot = errors.New("no before snapshot")
)

// Source is what the driver needs from a tree: its record queue and
// a way to snapshot its live state. *binary.Tree implements it.
type Source[T constraints.Ordered] interface {
	NextRecord() (T, bool)
	LastRecord() (T, bool)
	ClearRecords()
	Snapshot() *display.Snapshot[T]
}

type options struct {
	interval time.Duration
	log      *logrus.Entry
	metrics  *Metrics
}

type Option func(*options)

// WithInterval sets the time between frames. Non-positive
// intervals are ignored.
func WithInterval(interval time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.interval = interval
		}
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(o *options) {
		o.log = log
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// BeginOptions are the per-animation parameters.
type BeginOptions[T constraints.Ordered] struct {
	// Deleted is the key being deleted, if any. Its node is drawn
	// as deleted instead of highlighted.
	Deleted *T
	// Focus is passed to the final frame, so the renderer can
	// call out the result of a find.
	Focus *display.Focus[T]
	// Recenter is passed to the final frame.
	Recenter bool
}

// Driver turns the record queue of a Source into frames for a Renderer.
// All methods are safe for concurrent use.
type Driver[T constraints.Ordered] struct {
	src      Source[T]
	renderer display.Renderer[T]
	interval time.Duration
	log      *logrus.Entry
	metrics  *Metrics

	mu sync.Mutex
	// before is the state saved by Save. Ticks mark nodes in it.
	before *display.Snapshot[T]
	// current is what the renderer was last given as the base state.
	current *display.Snapshot[T]
	anim    *Animation
}

// NewDriver creates a driver. The current display state starts as the
// live state of src. r may be nil, in which case frames are dropped.
func NewDriver[T constraints.Ordered](src Source[T], r display.Renderer[T], opts ...Option) *Driver[T] {
	if src == nil {
		panic("src must not be nil")
	}

	o := options{
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.WithField("pkg", "animate")
	}
	if o.metrics == nil {
		o.metrics = NewMetrics(nil)
	}
	if r == nil {
		r = display.RendererFunc[T](func(display.Frame[T]) error { return nil })
	}

	return &Driver[T]{
		src:      src,
		renderer: r,
		interval: o.interval,
		log:      o.log,
		metrics:  o.metrics,
		current:  src.Snapshot(),
	}
}

// Save captures the before snapshot. Call it immediately before the
// structural operation that is going to be animated.
func (d *Driver[T]) Save() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.before = d.src.Snapshot()
}

// Begin starts replaying the source's records and returns at once.
// Use the returned Animation to wait for it. Begin returns ErrBusy if
// another animation has not finished yet.
func (d *Driver[T]) Begin(opts BeginOptions[T]) (*Animation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.anim != nil {
		return nil, errors.Wrapf(ErrBusy, "cannot begin while %s is running", d.anim.ID)
	}

	a := newAnimation()
	d.anim = a
	if d.before != nil {
		// render the old state while its nodes are being highlighted
		d.current = d.before
	}

	d.metrics.Started.Inc()
	d.metrics.InFlight.Set(1)
	d.log.WithField("animation", a.ID).Debugf("begin, interval %v", d.interval)

	go d.run(a, opts)

	return a, nil
}

func (d *Driver[T]) run(a *Animation, opts BeginOptions[T]) {
	looper := director.NewTimedLooper(director.FOREVER, d.interval, make(chan error, 1))
	looped := make(chan error, 1)

	go looper.Loop(func() error {
		return d.tick(a, opts.Deleted)
	})
	go func() {
		looped <- looper.Wait()
	}()

	var err error
	select {
	case err = <-looped:
	case <-a.skip:
		a.skipped.Store(true)
		d.metrics.Skipped.Inc()

		// Ticks after the skip return nil, so unless a tick already
		// ended the loop, only Quit can end it. Quit's send never
		// completes on a looper that has exited.
		d.mu.Lock()
		ended := a.looperDone
		d.mu.Unlock()
		if !ended {
			looper.Quit()
		}
		err = <-looped
	}

	d.finish(a, opts, err)
}

func (d *Driver[T]) tick(a *Animation, deleted *T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, st := chops.TryRecv[struct{}](a.skip).Get(); st == chops.Closed {
		return nil
	}

	err := d.step(a, deleted)
	if err != nil {
		a.looperDone = true
	}
	return err
}

// step replays one record. d.mu must be held.
func (d *Driver[T]) step(a *Animation, deleted *T) error {
	if d.before == nil {
		return errNoSnapshot
	}

	k, ok := d.src.NextRecord()
	if !ok {
		return errDrained
	}
	a.frames.Add(1)

	log := d.log.WithField("animation", a.ID)
	f := display.Frame[T]{}

	if n := d.before.Find(k); n != nil {
		n.Highlighted = true
		if deleted != nil && *deleted == k {
			n.Highlighted = false
			n.Deleted = true
		}
		p := n.Pos()
		f.Target = &p
	} else {
		log.Debugf("record %v is not in the before snapshot", k)
	}
	f.State = d.before.Clone()

	log.Debugf("frame %d: %v", a.Frames(), k)

	if err := d.render(f); err != nil {
		return errors.Wrapf(err, "rendering frame for %v", k)
	}
	return nil
}

func (d *Driver[T]) finish(a *Animation, opts BeginOptions[T], err error) {
	d.mu.Lock()

	log := d.log.WithField("animation", a.ID)

	switch {
	case err == nil:
	case errors.Is(err, errDrained), errors.Is(err, errNoSnapshot):
	default:
		a.err = err
		log.WithError(err).Warn("animation stopped")
	}

	// a skip leaves records behind. Land on the last one.
	if k, ok := d.src.LastRecord(); ok {
		if n := d.before.Find(k); n != nil {
			p := n.Pos()
			d.renderAndKeep(a, display.Frame[T]{State: d.before.Clone(), Target: &p})
		}
		d.src.ClearRecords()
	}

	d.before = nil
	d.current = d.src.Snapshot()
	d.renderAndKeep(a, display.Frame[T]{
		State:    d.current.Clone(),
		Focus:    opts.Focus,
		Recenter: opts.Recenter,
	})

	d.anim = nil
	d.metrics.InFlight.Set(0)
	log.Debugf("done after %d frames, skipped %t", a.Frames(), a.Skipped())

	d.mu.Unlock()
	close(a.done)
}

// renderAndKeep renders f and keeps the first error on a.
func (d *Driver[T]) renderAndKeep(a *Animation, f display.Frame[T]) {
	if err := d.render(f); err != nil && a.err == nil {
		a.err = err
	}
}

func (d *Driver[T]) render(f display.Frame[T]) error {
	d.metrics.Frames.Inc()
	return d.renderer.Render(f)
}

// Skip ends the in-flight animation right away. It returns false if
// there was nothing to skip, or it was already skipped.
func (d *Driver[T]) Skip() bool {
	d.mu.Lock()
	a := d.anim
	d.mu.Unlock()

	if a == nil {
		return false
	}
	return chops.TryClose[struct{}](a.skip)
}

func (d *Driver[T]) IsAnimating() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.anim != nil
}

// Current returns a copy of the current display state. While an
// animation runs, this is the before snapshot with its marks.
func (d *Driver[T]) Current() *display.Snapshot[T] {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.current.Clone()
}

// Render refreshes the current display state from the source and
// renders it with the hints in f. f.State is ignored. Render returns
// ErrBusy while an animation is in flight.
func (d *Driver[T]) Render(f display.Frame[T]) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.anim != nil {
		return ErrBusy
	}

	d.current = d.src.Snapshot()
	f.State = d.current.Clone()
	return d.render(f)
}
