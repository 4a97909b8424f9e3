package state

// Result is the outcome of a collaborator call: a value or a failure reason.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failure reason. A nil reason is still treated as a failure.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errNilFailure
	}
	return Result[T]{err: err}
}

// Capture converts a conventional (value, error) pair.
func Capture[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the value and whether the result succeeded.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.err == nil
}

// Err returns the failure reason, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

type nilFailure struct{}

func (nilFailure) Error() string { return "operation failed" }

var errNilFailure error = nilFailure{}
