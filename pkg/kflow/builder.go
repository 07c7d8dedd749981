package kflow

import "slices"

// Builder accumulates hooks in registration order. It is not safe for
// concurrent use.
type Builder[T any] struct {
	hooks []Hook[T]
	opts  options
}

func NewBuilder[T any](opts ...Option) *Builder[T] {
	return &Builder[T]{opts: newOptions(opts...)}
}

// Register adds a pure transform. Duplicate names and priorities are allowed.
func (b *Builder[T]) Register(name string, mask PathMask, priority int, fn func(T) T) *Builder[T] {
	return b.RegisterTry(name, mask, priority, func(ctx T) (T, error) {
		return fn(ctx), nil
	})
}

// RegisterTry adds a transform that may fail. A failure stops the pipeline at
// this hook.
func (b *Builder[T]) RegisterTry(name string, mask PathMask, priority int, fn func(T) (T, error)) *Builder[T] {
	b.hooks = append(b.hooks, newHook(name, mask, priority, fn))
	return b
}

// Build sorts a copy of the registered hooks by ascending priority. Hooks with
// equal priority keep their registration order. The builder can keep
// registering afterwards without affecting the returned pipeline.
func (b *Builder[T]) Build() *Pipeline[T] {
	sorted := slices.Clone(b.hooks)
	slices.SortStableFunc(sorted, byPriority[T])
	return &Pipeline[T]{hooks: sorted, logger: b.opts.logger}
}
