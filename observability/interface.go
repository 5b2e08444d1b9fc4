package observability

import "time"

// State is a step of a single intercepted invocation.
//
//	NotStarted -> PreLogged -> Executing -> Completed
//	                                     -> Failed
//
// Completed and Failed are terminal. No invocation revisits a state.
type State int

const (
	// NotStarted is the initial state, before the pre-hook ran.
	NotStarted State = iota
	// PreLogged means the start line has been emitted.
	PreLogged
	// Executing means the original call is running.
	Executing
	// Completed means the call returned normally and the end line was emitted.
	Completed
	// Failed means the call returned an error or panicked. No end line is emitted.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case PreLogged:
		return "PreLogged"
	case Executing:
		return "Executing"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	return s == Completed || s == Failed
}

// Observer receives the state transitions of intercepted invocations.
// It allows callers to watch the interceptor without coupling it to a
// particular backend.
//
// Implementations are called synchronously on the invoking goroutine and
// must be safe for concurrent use.
type Observer interface {
	// ObserveTransition is called each time an invocation enters a new state.
	ObserveTransition(t Transition)
}

// Transition describes one invocation entering a state.
type Transition struct {
	// TypeName is the declaring type of the intercepted method.
	TypeName string

	// MethodName is the intercepted method.
	MethodName string

	// From is the state being left.
	From State

	// To is the state being entered.
	To State

	// Elapsed is the duration of the original call. It is only set when To
	// is Completed or Failed.
	Elapsed time.Duration

	// Error is the failure returned by the original call when To is Failed.
	// It is nil when the call panicked.
	Error error
}
