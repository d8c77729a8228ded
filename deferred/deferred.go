package deferred

// Deferred describes a computation that produces an Outcome[A, E] when
// explicitly executed. Construction performs no work; the value closes only
// over immutable inputs, so re-execution is idempotent.
type Deferred[A, E any] struct {
	eval func() Outcome[A, E]
}

// Succeed returns a computation that always yields value.
func Succeed[A, E any](value A) Deferred[A, E] {
	return Deferred[A, E]{eval: func() Outcome[A, E] {
		return Success[A, E](value)
	}}
}

// Fail returns a computation that always yields failure.
func Fail[A, E any](failure E) Deferred[A, E] {
	return Deferred[A, E]{eval: func() Outcome[A, E] {
		return Failure[A, E](failure)
	}}
}

// Sync wraps a zero-argument computation that cannot fail. fn runs once per
// execution, never at construction. A panicking fn is out of contract and
// surfaces as a host panic.
func Sync[A, E any](fn func() A) Deferred[A, E] {
	return Deferred[A, E]{eval: func() Outcome[A, E] {
		return Success[A, E](fn())
	}}
}

// Cond chooses the success branch when pred holds and the failure branch
// otherwise. The predicate is evaluated by the caller at construction; the
// chosen branch body runs only at execution.
func Cond[A, E any](pred bool, onTrue func() A, onFalse func() E) Deferred[A, E] {
	return Deferred[A, E]{eval: func() Outcome[A, E] {
		if pred {
			return Success[A, E](onTrue())
		}
		return Failure[A, E](onFalse())
	}}
}

// FromOutcome lifts an already-computed outcome back into a computation.
func FromOutcome[A, E any](out Outcome[A, E]) Deferred[A, E] {
	return Deferred[A, E]{eval: func() Outcome[A, E] {
		return out
	}}
}
