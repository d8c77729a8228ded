package deferred

// Outcome represents the result of a single execution: exactly one of
// success or failure, decided at execution time.
type Outcome[A, E any] struct {
	value   A
	failure E
	failed  bool
}

// Success builds a successful outcome carrying value.
func Success[A, E any](value A) Outcome[A, E] {
	return Outcome[A, E]{value: value}
}

// Failure builds a failed outcome carrying failure.
func Failure[A, E any](failure E) Outcome[A, E] {
	return Outcome[A, E]{failure: failure, failed: true}
}

// OutcomeFrom adapts an idiomatic (value, error) pair into an Outcome.
// A nil error means success.
func OutcomeFrom[A any](value A, err error) Outcome[A, error] {
	if err != nil {
		return Failure[A, error](err)
	}
	return Success[A, error](value)
}

// Succeeded reports whether the outcome carries a value.
func (o Outcome[A, E]) Succeeded() bool { return !o.failed }

// Failed reports whether the outcome carries a failure.
func (o Outcome[A, E]) Failed() bool { return o.failed }

// Value returns the success value, or the zero value on failure.
func (o Outcome[A, E]) Value() A { return o.value }

// Failure returns the failure value, or the zero value on success.
func (o Outcome[A, E]) Failure() E { return o.failure }

// Tagged is the contract for structured failures distinguishable by a
// discriminator string. CatchTag dispatches on it.
type Tagged interface {
	Tag() string
}
