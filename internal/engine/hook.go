package engine

// HookID identifies a handler registered on a Hook.
type HookID uint64

type hookEntry[T any] struct {
	id HookID
	fn func(T)
}

// Hook is an ordered list of handlers invoked synchronously.
// The zero value is ready to use.
type Hook[T any] struct {
	next     HookID
	handlers []hookEntry[T]
}

// Add registers fn and returns its id.
func (h *Hook[T]) Add(fn func(T)) HookID {
	h.next++
	h.handlers = append(h.handlers, hookEntry[T]{id: h.next, fn: fn})
	return h.next
}

// Remove unregisters the handler with the given id.
// It reports whether a handler was removed.
func (h *Hook[T]) Remove(id HookID) bool {
	for i, e := range h.handlers {
		if e.id == id {
			h.handlers = append(h.handlers[:i:i], h.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Invoke calls every handler in registration order. Handlers added or
// removed during the call take effect on the next Invoke.
func (h *Hook[T]) Invoke(v T) {
	handlers := h.handlers
	for _, e := range handlers {
		e.fn(v)
	}
}

// Len returns the number of registered handlers.
func (h *Hook[T]) Len() int {
	return len(h.handlers)
}
