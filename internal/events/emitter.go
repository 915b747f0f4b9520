// Package events provides a small typed multi-listener emitter with
// persistent and single-shot subscriptions.
package events

import "sync"

// Handler receives an emitted value.
type Handler[T any] func(T)

// Subscription is a handle to a registered handler.
type Subscription interface {
	// Cancel removes the handler. Calling Cancel more than once is a no-op.
	Cancel()
}

type listener[T any] struct {
	id      uint64
	handler Handler[T]
	once    bool
}

// Emitter dispatches values of type T to named channels of listeners.
// Handlers run synchronously on the emitting goroutine, in registration order.
type Emitter[T any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[string][]listener[T]
	// once-handlers taken off the list by an Emit that has not run them yet
	firing map[uint64]struct{}
}

// NewEmitter creates an empty emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{
		listeners: make(map[string][]listener[T]),
		firing:    make(map[uint64]struct{}),
	}
}

// On registers a persistent handler for name.
func (e *Emitter[T]) On(name string, h Handler[T]) Subscription {
	return e.add(name, h, false)
}

// Once registers a handler that is removed before its first invocation.
func (e *Emitter[T]) Once(name string, h Handler[T]) Subscription {
	return e.add(name, h, true)
}

func (e *Emitter[T]) add(name string, h Handler[T], once bool) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.listeners[name] = append(e.listeners[name], listener[T]{id: id, handler: h, once: once})

	return &subscription[T]{emitter: e, name: name, id: id}
}

// Emit delivers v to every handler registered for name and reports whether
// any handler was called. Once-handlers are removed before they run so a
// handler that emits again on the same name is not re-entered.
func (e *Emitter[T]) Emit(name string, v T) bool {
	e.mu.Lock()
	current := e.listeners[name]
	if len(current) == 0 {
		e.mu.Unlock()
		return false
	}

	snapshot := make([]listener[T], len(current))
	copy(snapshot, current)

	kept := current[:0]
	for _, l := range current {
		if l.once {
			e.firing[l.id] = struct{}{}
		} else {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		delete(e.listeners, name)
	} else {
		e.listeners[name] = kept
	}
	e.mu.Unlock()

	for _, l := range snapshot {
		// skip handlers cancelled by an earlier handler during this emit
		if l.once && !e.takeFiring(l.id) {
			continue
		}
		if !l.once && !e.has(name, l.id) {
			continue
		}
		l.handler(v)
	}
	return true
}

func (e *Emitter[T]) has(name string, id uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, l := range e.listeners[name] {
		if l.id == id {
			return true
		}
	}
	return false
}

func (e *Emitter[T]) takeFiring(id uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.firing[id]; !ok {
		return false
	}
	delete(e.firing, id)
	return true
}

func (e *Emitter[T]) remove(name string, id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.firing, id)

	current := e.listeners[name]
	for i, l := range current {
		if l.id == id {
			e.listeners[name] = append(current[:i:i], current[i+1:]...)
			break
		}
	}
	if len(e.listeners[name]) == 0 {
		delete(e.listeners, name)
	}
}

// ListenerCount returns the number of handlers registered for name.
func (e *Emitter[T]) ListenerCount(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[name])
}

// RemoveAllListeners drops every handler on every name.
func (e *Emitter[T]) RemoveAllListeners() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = make(map[string][]listener[T])
	e.firing = make(map[uint64]struct{})
}

type subscription[T any] struct {
	emitter *Emitter[T]
	name    string
	id      uint64
	once    sync.Once
}

func (s *subscription[T]) Cancel() {
	s.once.Do(func() {
		s.emitter.remove(s.name, s.id)
	})
}
