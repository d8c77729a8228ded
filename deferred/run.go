package deferred

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// FailurePanic carries a typed failure across the panic boundary when an
// unhandled failure reaches RunSync.
type FailurePanic struct {
	Failure any
}

func (fp FailurePanic) Error() string {
	return fmt.Sprintf("deferred: unhandled failure: %v", fp.Failure)
}

// RunSync executes d inline on the calling goroutine and returns its
// success value. An unhandled failure panics with FailurePanic; callers who
// want to avoid that must recover first via CatchAll or CatchTag.
func RunSync[A, E any](d Deferred[A, E]) A {
	out := d.eval()
	if out.failed {
		panic(FailurePanic{Failure: out.failure})
	}
	return out.value
}

// Promise holds the already-computed outcome of a single execution and
// delivers it asynchronously. It resolves exactly once; there is no retry,
// timeout, or cancellation.
type Promise[A, E any] struct {
	runId   uuid.UUID
	span    timespan.TimeSpan
	outcome Outcome[A, E]
}

// RunPromise executes d eagerly and synchronously on the calling goroutine
// and defers only the delivery of its outcome.
func RunPromise[A, E any](d Deferred[A, E]) *Promise[A, E] {
	logger, _ := zap.NewProduction()

	from := time.Now()
	out := d.eval()
	span := timespan.BetweenTimes(from, time.Now())

	p := &Promise[A, E]{
		runId:   uuid.New(),
		span:    span,
		outcome: out,
	}
	logger.Sugar().Debugf("resolved deferred run: runId: %v", p.runId)
	return p
}

// Done delivers the outcome over a fresh channel, buffered so delivery
// never blocks on a late consumer. Every call delivers the outcome again,
// so draining one channel never turns a later receive into a phantom zero
// Outcome. Receive at most once per returned channel; a second receive on
// the same channel sees it closed.
func (p *Promise[A, E]) Done() <-chan Outcome[A, E] {
	resumeCh := make(chan Outcome[A, E], 1)
	resumeCh <- p.outcome
	close(resumeCh)
	return resumeCh
}

// Await returns the resolved outcome. Safe to call any number of times.
func (p *Promise[A, E]) Await() Outcome[A, E] {
	return p.outcome
}

// RunID identifies this execution, for log correlation.
func (p *Promise[A, E]) RunID() uuid.UUID {
	return p.runId
}

// Span is the wall-clock window in which the wrapped logic executed.
func (p *Promise[A, E]) Span() timespan.TimeSpan {
	return p.span
}
