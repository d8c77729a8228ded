package deferred

// Composition operators are package-level functions rather than methods:
// Go methods cannot introduce type parameters, and Map/FlatMap/CatchAll all
// change one of the computation's type parameters.

// Map transforms the success value, leaving failures untouched.
func Map[A, B, E any](d Deferred[A, E], f func(A) B) Deferred[B, E] {
	return Deferred[B, E]{eval: func() Outcome[B, E] {
		out := d.eval()
		if out.failed {
			return Failure[B, E](out.failure)
		}
		return Success[B, E](f(out.value))
	}}
}

// MapError transforms the failure value, leaving successes untouched.
func MapError[A, E, F any](d Deferred[A, E], f func(E) F) Deferred[A, F] {
	return Deferred[A, F]{eval: func() Outcome[A, F] {
		out := d.eval()
		if out.failed {
			return Failure[A, F](f(out.failure))
		}
		return Success[A, F](out.value)
	}}
}

// FlatMap sequences d with a computation derived from its success value.
// A failure of d short-circuits; f is never invoked for it.
func FlatMap[A, B, E any](d Deferred[A, E], f func(A) Deferred[B, E]) Deferred[B, E] {
	return Deferred[B, E]{eval: func() Outcome[B, E] {
		out := d.eval()
		if out.failed {
			return Failure[B, E](out.failure)
		}
		return f(out.value).eval()
	}}
}

// CatchAll recovers from any failure of d by executing the handler's
// replacement computation instead. The handler runs at most once, only on
// failure, and only at execution time. Successes pass through unchanged.
func CatchAll[A, E, F any](d Deferred[A, E], handler func(E) Deferred[A, F]) Deferred[A, F] {
	return Deferred[A, F]{eval: func() Outcome[A, F] {
		out := d.eval()
		if out.failed {
			return handler(out.failure).eval()
		}
		return Success[A, F](out.value)
	}}
}

// CatchTag recovers like CatchAll, but only when the failure's
// discriminator equals tag; any other failure propagates unchanged.
func CatchTag[A any, E Tagged](d Deferred[A, E], tag string, handler func(E) Deferred[A, E]) Deferred[A, E] {
	return Deferred[A, E]{eval: func() Outcome[A, E] {
		out := d.eval()
		if out.failed && out.failure.Tag() == tag {
			return handler(out.failure).eval()
		}
		return out
	}}
}
