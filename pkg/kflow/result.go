package kflow

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of Pipeline.Run.
type Result[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	result     T
	err        error
	failedHook string
	isSuccess  bool
}

func Success[T any](r T) Result[T] {
	return newResult(uuid.New(), r, "", nil)
}

// Fail keeps the context reached before the failing hook so callers can
// inspect the partial state. Nothing is rolled back.
func Fail[T any](partial T, hook string, err error) Result[T] {
	return newResult(uuid.New(), partial, hook, err)
}

func newResult[T any](id uuid.UUID, r T, hook string, err error) Result[T] {
	return Result[T]{
		id:         id,
		createdAt:  time.Now().UTC(),
		result:     r,
		err:        err,
		failedHook: hook,
		isSuccess:  err == nil,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// FailedHook is the name of the hook whose transform failed, empty on success.
func (r Result[T]) FailedHook() string {
	return r.failedHook
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id identifies the run. Pipeline debug records carry it as run_id.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// GetErrors splits an errors.Join error into its parts. A plain error comes
// back alone and nil gives an empty slice.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
