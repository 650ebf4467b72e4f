// Package controller implements the event-result-state pattern every
// screen's logic runs on: events go into an unbounded FIFO queue, a
// single consumer performs the effects of one event at a time, and
// each emitted result is folded into the state by a pure reducer.
// State transitions are therefore linearizable per controller.
package controller

import (
	"context"
	"sync"
)

// Handler performs the side effects of one event and emits its
// results, in order. Emissions for one triggered operation always
// follow loading first, then success or failure.
type Handler[E, R any] func(ctx context.Context, event E, emit func(R))

// Reducer folds one result into the state. It must be pure and total:
// every result variant has exactly one branch.
type Reducer[R, S any] func(S, R) S

// Controller drives one screen's state. Offer never blocks; Close
// stops accepting events, drains what is queued, and waits for the
// consumer to finish.
type Controller[E, R, S any] struct {
	state  *StateBox[S]
	handle Handler[E, R]
	reduce Reducer[R, S]

	mu     sync.Mutex
	queue  []E
	closed bool

	wake chan struct{}
	done chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
}

// New starts a controller with its single consumer goroutine.
func New[E, R, S any](initial S, reduce Reducer[R, S], handle Handler[E, R]) *Controller[E, R, S] {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller[E, R, S]{
		state:  NewStateBox(initial),
		handle: handle,
		reduce: reduce,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
	go c.run()
	return c
}

// Offer queues an event. Events are processed strictly in submission
// order. Offers after Close are dropped.
func (c *Controller[E, R, S]) Offer(event E) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.queue = append(c.queue, event)
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// State exposes the observable state value.
func (c *Controller[E, R, S]) State() *StateBox[S] {
	return c.state
}

// Close drains the queue and stops the consumer.
func (c *Controller[E, R, S]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		<-c.done
		return
	}
	c.closed = true
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	<-c.done
	c.cancel()
}

func (c *Controller[E, R, S]) run() {
	defer close(c.done)
	for {
		event, ok, stop := c.next()
		if stop {
			return
		}
		if !ok {
			<-c.wake
			continue
		}
		c.handle(c.ctx, event, func(result R) {
			c.state.Set(c.reduce(c.state.Get(), result))
		})
	}
}

func (c *Controller[E, R, S]) next() (event E, ok, stop bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) > 0 {
		event = c.queue[0]
		c.queue = c.queue[1:]
		return event, true, false
	}
	return event, false, c.closed
}
