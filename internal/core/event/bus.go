package event

import "reflect"

// Bus is a double-buffered event bus. Events emitted during turn N are
// delivered when the driver dispatches at the end of turn N, after
// SwapBuffers. Delivery follows emission order so a replayed turn produces
// the same handler calls.
// Accessed only from the simulation goroutine.
type Bus struct {
	front    []any
	back     []any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]any, 0, 32),
		back:     make([]any, 0, 32),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event into the back buffer.
func Emit[T any](b *Bus, event T) {
	b.back = append(b.back, event)
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// SwapBuffers moves everything emitted so far to the front buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front[:0]
}

// Pending returns the number of events waiting in the back buffer.
func (b *Bus) Pending() int {
	return len(b.back)
}

// Count returns how many events of type T wait in the back buffer.
func Count[T any](b *Bus) int {
	n := 0
	for _, ev := range b.back {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

// DispatchAll delivers all front-buffer events to their subscribed handlers,
// then clears the front buffer. Handlers may Emit; those events wait for the
// next swap.
func (b *Bus) DispatchAll() int {
	n := len(b.front)
	for _, ev := range b.front {
		for _, h := range b.handlers[reflect.TypeOf(ev)] {
			h(ev)
		}
	}
	clear(b.front)
	b.front = b.front[:0]
	return n
}
