package interceptor

import (
	"fmt"

	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/observability"
	"github.com/aalemi-dev/calltrace/selector"
)

// traceCallerSkip is the number of frames between the Logger call in
// intercept and the code invoking the binding: intercept, invoke, and Call
// or a wrapper closure. It makes the caller field of trace lines point at
// the traced call.
const traceCallerSkip = 3

// Binding is a call site bound to an Interceptor. It is immutable.
//
// Invocations through an ineligible binding call the function directly:
// nothing is logged, timed or observed.
type Binding struct {
	site       selector.CallSite
	eligible   bool
	log        logger.Logger
	clock      Clock
	observer   observability.Observer
	structured bool
}

// Site returns the bound call site.
func (b *Binding) Site() selector.CallSite {
	return b.site
}

// Eligible reports whether invocations through b are traced.
func (b *Binding) Eligible() bool {
	return b.eligible
}

// intercept runs call exactly once. For eligible bindings it walks the
// invocation through NotStarted -> PreLogged -> Executing -> Completed|Failed,
// emitting the start line before the call and the end line only after a
// normal return. Errors and panics from call reach the caller untouched.
//
// Arguments that do not match the declared parameters are rejected before
// anything runs.
func (b *Binding) intercept(args []any, call func() (Value, error)) error {
	if err := b.checkArity(len(args)); err != nil {
		return err
	}
	if !b.eligible {
		_, err := call()
		return err
	}

	cc := newCallContext(b.site.Type.Name, b.site.Method.Name, b.site.Method.Params, args)

	b.log.Info(StartedMessage(cc), nil, b.fields(cc, nil)...)
	b.transition(cc, observability.NotStarted, observability.PreLogged, Timing{}, nil)
	b.transition(cc, observability.PreLogged, observability.Executing, Timing{}, nil)

	var timing Timing
	returned := false
	defer func() {
		if !returned {
			timing.Stop = b.clock.Now()
			b.transition(cc, observability.Executing, observability.Failed, timing, nil)
		}
	}()

	timing.Start = b.clock.Now()
	result, err := call()
	timing.Stop = b.clock.Now()
	returned = true

	outcome := Outcome{Value: result, Err: err}
	if outcome.Failed() {
		b.transition(cc, observability.Executing, observability.Failed, timing, outcome.Err)
		return outcome.Err
	}

	elapsed := timing.ElapsedMillis()
	b.log.Info(EndedMessage(cc, elapsed, outcome.Value), nil, b.fields(cc, &elapsed)...)
	b.transition(cc, observability.Executing, observability.Completed, timing, nil)
	return nil
}

// checkArity reports whether n arguments fit the declared parameters. Sites
// that declare no parameters accept any number of arguments.
func (b *Binding) checkArity(n int) error {
	declared := len(b.site.Method.Params)
	if declared == 0 || declared == n {
		return nil
	}
	return fmt.Errorf("%s.%s: %w: declared %d, got %d",
		b.site.Type.Name, b.site.Method.Name, ErrArityMismatch, declared, n)
}

func (b *Binding) transition(cc CallContext, from, to observability.State, timing Timing, err error) {
	t := observability.Transition{
		TypeName:   cc.TypeName,
		MethodName: cc.MethodName,
		From:       from,
		To:         to,
		Error:      err,
	}
	if to.Terminal() {
		t.Elapsed = timing.Elapsed()
	}
	b.observer.ObserveTransition(t)
}

func (b *Binding) fields(cc CallContext, elapsedMillis *int64) []map[string]interface{} {
	if !b.structured {
		return nil
	}
	f := map[string]interface{}{
		"type":   cc.TypeName,
		"method": cc.MethodName,
	}
	if elapsedMillis != nil {
		f["elapsed_ms"] = *elapsedMillis
	}
	return []map[string]interface{}{f}
}
