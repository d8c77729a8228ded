// Package deferred provides a minimal deferred-computation value for Go.
//
// A Deferred is an immutable description of work: constructing one never
// runs the wrapped logic, and composing it (Map, FlatMap, CatchAll,
// CatchTag) only describes more work. Execution is always an explicit,
// separate step at the boundary of the program.
//
// # Why a deferred value?
//
// Go signals failure with (value, error) pairs and reserves panic for
// unrecoverable faults. That works well at function boundaries, but it
// erases the distinction between "a computation that may fail" and
// "a computation that already ran". A Deferred keeps that distinction:
// the failure channel is part of the type, the computation is a value you
// can hand around and inspect, and nothing happens until you ask for it.
//
// # Two channels, one boundary
//
// Every execution produces exactly one Outcome: success with a value, or
// failure with a typed failure — never both, never neither. Typed failures
// stay explicit through composition; only the outermost execution boundary
// converts an unhandled failure into the host fault channel:
//
//   - RunSync executes inline and panics with FailurePanic on failure.
//   - RunPromise executes eagerly and defers only the delivery, resolving
//     a Promise with the Outcome.
//
// Handle failures before the boundary with CatchAll, or dispatch on a
// failure's discriminator with CatchTag when the failure type implements
// Tagged.
//
// # Purity and re-execution
//
// A Deferred closes only over immutable inputs, so executing the same
// value any number of times yields the same outcome. There is no memo, no
// cached result, no hidden state; see the memo package when caching is
// actually wanted.
//
// Example:
//
//	quotient := deferred.Cond(b != 0,
//		func() float64 { return a / b },
//		func() error { return errDivZero },
//	)
//	safe := deferred.CatchAll(quotient, func(error) deferred.Deferred[float64, error] {
//		return deferred.Succeed[float64, error](0)
//	})
//	v := deferred.RunSync(safe)
package deferred
