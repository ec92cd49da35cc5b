package chops

import (
	"context"
	"sync"
)

// Iterator is a pull iterator, such as the tree iterators. It must not
// need closing, since CoIterate may abandon it part way.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is the consumer's end of CoIterate.
type CoIterator[T any] struct {
	items <-chan T
	stop  func()
}

// Items returns the channel the iterated items arrive on. It is closed
// when the iterator runs out, or after Stop.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop ends the iteration early. It is safe to call more than once and
// from several goroutines. At most one item already in flight may still
// arrive on Items after Stop returns.
func (c CoIterator[T]) Stop() {
	c.stop()
}

// CoIterate runs iterator in its own goroutine and sends its items on
// the Items channel:
//
//	co := CoIterate[T](tr.InOrderIterator())
//	for k := range co.Items() {
//		if done(k) {
//			co.Stop()
//			break
//		}
//	}
//
// The goroutine exits when the iterator is exhausted or Stop is called.
// A nil iterator yields nothing.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	return CoIterateContext[T](context.Background(), iterator)
}

// CoIterateContext is CoIterate, but canceling ctx also stops the
// iteration.
func CoIterateContext[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	ctx, cancel := context.WithCancel(ctx)
	var once sync.Once
	co := CoIterator[T]{
		items: out,
		stop:  func() { once.Do(cancel) },
	}

	if iterator == nil {
		cancel()
		close(out)
		return co
	}

	go func() {
		defer close(out)
		defer cancel()
		for iterator.Next() {
			select {
			case out <- iterator.Item():
			case <-ctx.Done():
				return
			}
		}
	}()

	return co
}
