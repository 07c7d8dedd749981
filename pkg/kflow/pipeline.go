package kflow

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Pipeline is an immutable, priority ordered list of hooks. It is safe for
// concurrent use as long as every call owns its context value.
type Pipeline[T any] struct {
	hooks  []Hook[T]
	logger *slog.Logger
}

// Execute threads ctx through every hook matching path, in order. On the first
// transform error it stops and returns the context as passed to the failing
// hook along with the error as the transform returned it.
func (p *Pipeline[T]) Execute(path PathMask, ctx T) (T, error) {
	out, _, err := p.run(uuid.Nil, path, ctx)
	return out, err
}

// Run is Execute reporting through a Result. The Result id is the run id
// attached to the debug records of this run, and a failed Result names the
// failing hook.
func (p *Pipeline[T]) Run(path PathMask, ctx T) Result[T] {
	runID := uuid.New()
	out, failed, err := p.run(runID, path, ctx)
	return newResult(runID, out, failed, err)
}

// run returns the last context, the name of the failing hook and its error.
// A nil runID gets one assigned only when debug logging is on.
func (p *Pipeline[T]) run(runID uuid.UUID, path PathMask, ctx T) (T, string, error) {
	current := ctx
	debug := p.logger != nil && p.logger.Enabled(context.Background(), slog.LevelDebug)
	if debug && runID == uuid.Nil {
		runID = uuid.New()
	}

	for _, h := range p.hooks {
		if !h.ShouldExecute(path) {
			continue
		}

		next, err := h.Apply(current)
		if err != nil {
			if debug {
				p.logger.Debug("hook failed",
					slog.String("run_id", runID.String()),
					slog.String("hook", h.name),
					slog.String("hook_id", h.id.String()),
					slog.Int("priority", h.priority),
					slog.String("path", path.String()),
					slog.String("error", err.Error()))
			}
			return current, h.name, err
		}
		current = next

		if debug {
			p.logger.Debug("hook applied",
				slog.String("run_id", runID.String()),
				slog.String("hook", h.name),
				slog.String("hook_id", h.id.String()),
				slog.Int("priority", h.priority),
				slog.String("path", path.String()))
		}
	}

	return current, "", nil
}

// MustExecute is Execute for pipelines built from pure hooks. It panics with
// the transform's error, wrapped, if a transform fails.
func (p *Pipeline[T]) MustExecute(path PathMask, ctx T) T {
	out, err := p.Execute(path, ctx)
	if err != nil {
		panic(errors.Wrapf(err, "kflow: hook failed on path %s", path))
	}
	return out
}

func (p *Pipeline[T]) HookCount() int {
	return len(p.hooks)
}

// Names lists hook names in execution order.
func (p *Pipeline[T]) Names() []string {
	names := make([]string, 0, len(p.hooks))
	for _, h := range p.hooks {
		names = append(names, h.name)
	}
	return names
}

// Hooks returns a copy of the ordered hooks.
func (p *Pipeline[T]) Hooks() []Hook[T] {
	return slices.Clone(p.hooks)
}
