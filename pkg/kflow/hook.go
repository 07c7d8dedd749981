package kflow

import "github.com/google/uuid"

// Hook binds a transform to the paths it runs on and its place in the order.
// A Hook is immutable once created.
type Hook[T any] struct {
	id       uuid.UUID
	name     string
	pathMask PathMask
	priority int
	fn       func(T) (T, error)
}

func newHook[T any](name string, mask PathMask, priority int, fn func(T) (T, error)) Hook[T] {
	return Hook[T]{
		id:       uuid.New(),
		name:     name,
		pathMask: mask,
		priority: priority,
		fn:       fn,
	}
}

// ShouldExecute reports whether the hook runs for path. A zero mask never runs.
func (h Hook[T]) ShouldExecute(path PathMask) bool {
	return path.Matches(h.pathMask)
}

// Apply runs the transform on ctx.
func (h Hook[T]) Apply(ctx T) (T, error) {
	return h.fn(ctx)
}

func (h Hook[T]) ID() uuid.UUID {
	return h.id
}

func (h Hook[T]) Name() string {
	return h.name
}

func (h Hook[T]) PathMask() PathMask {
	return h.pathMask
}

func (h Hook[T]) Priority() int {
	return h.priority
}

func byPriority[T any](a, b Hook[T]) int {
	switch {
	case a.priority < b.priority:
		return -1
	case a.priority > b.priority:
		return 1
	}
	return 0
}
