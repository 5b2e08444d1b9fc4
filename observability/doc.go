// Package observability exposes the life cycle of intercepted invocations.
//
// # Overview
//
// The interceptor package runs every traced call through a small state
// machine:
//
//	NotStarted -> PreLogged -> Executing -> Completed | Failed
//
// An Observer attached to the interceptor is told about each transition as
// it happens. The interceptor works perfectly without one; NoOpObserver is
// the default.
//
// Observers are a side channel. They cannot change the outcome of a call and
// they see the same error value the caller receives.
//
// # Usage
//
//	type failureCounter struct{ n atomic.Int64 }
//
//	func (f *failureCounter) ObserveTransition(t observability.Transition) {
//	    if t.To == observability.Failed {
//	        f.n.Add(1)
//	    }
//	}
//
//	icpt := interceptor.New(cfg, sel, log, interceptor.WithObserver(&failureCounter{}))
//
// # Thread Safety
//
// Observer implementations must be thread-safe. They are called concurrently
// from every goroutine that invokes a traced method.
package observability
