package todoapi

import "context"

// Result is the single value delivered by a Future.
type Result[T any] struct {
	Value T
	Err   error
}

// Future is completed exactly once by the goroutine running the operation.
// Any number of goroutines may wait on it.
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
}

// goFuture runs fn in a new goroutine and returns a Future for its result.
func goFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		v, err := fn()
		f.result = Result[T]{Value: v, Err: err}
	}()
	return f
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done. A ctx error is
// returned as-is and leaves the operation running.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result.Value, f.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the operation completes and returns its result.
func (f *Future[T]) Result() Result[T] {
	<-f.done
	return f.result
}
