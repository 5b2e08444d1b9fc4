// Package interceptor traces method invocations.
//
// A traced invocation is logged when it starts, with its arguments, and when
// it returns, with the elapsed time and its result:
//
//	bank.Account.deposit has started its execution with parameters: {amount=50}
//	bank.Account.deposit has ended its execution after 12ms with result: [true]
//
// Both lines are written at info level through a child logger named after
// the declaring type.
//
// # Binding
//
// Tracing is explicit. A call site is bound once, typically at startup, and
// the binding wraps the function:
//
//	icpt := interceptor.New(interceptor.Config{}, selector.NewSelector(selector.Config{}), log)
//
//	deposit := icpt.MustBind(selector.CallSite{
//		Type:   selector.TypeInfo{Name: "bank.Account", Markers: []selector.Marker{"LogMe"}},
//		Method: selector.MethodInfo{Name: "deposit", Params: []string{"amount"}},
//	})
//
//	func (a *Account) Deposit(amount int) (bool, error) {
//		return interceptor.Call(deposit, []any{amount}, func() (bool, error) {
//			return a.deposit(amount)
//		})
//	}
//
// Bind asks the selector whether the site is eligible. Ineligible bindings
// call straight through.
//
// # Transparency
//
// The wrapped function runs exactly once per invocation and its results are
// returned unchanged. A returned error, or a panic, propagates to the caller
// as is; the end line is then not written. Arguments and results are only
// rendered for display.
//
// # Timing
//
// The elapsed time covers the wrapped function alone: the clock is read
// immediately before and after it, after the start line is written and
// before the end line is. It is reported in whole milliseconds, truncated.
//
// # Thread Safety
//
// Interceptor and Binding are immutable after construction and safe for
// concurrent use. Lines from concurrent invocations may interleave.
package interceptor
