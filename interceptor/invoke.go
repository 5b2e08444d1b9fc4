package interceptor

import "fmt"

// Call invokes fn through b. args are the argument values in declaration
// order; they are only displayed, never passed to fn or modified.
//
// When the site declares parameters, len(args) must equal their count.
// Otherwise Call returns ErrArityMismatch without running fn. A site that
// declares no parameters shows its arguments by position: arg0, arg1, ...
//
// The returned values are exactly those of fn. A nil interface result is
// logged like a void call.
//
// Example:
//
//	ok, err := interceptor.Call(depositBinding, []any{amount}, func() (bool, error) {
//	    return acct.deposit(amount)
//	})
func Call[R any](b *Binding, args []any, fn func() (R, error)) (R, error) {
	return invoke(b, args, fn)
}

// CallVoid invokes fn, which has no result, through b.
func CallVoid(b *Binding, args []any, fn func() error) error {
	return invokeVoid(b, args, fn)
}

// Func0 returns fn wrapped by b. It panics with ErrArityMismatch if the site
// declares parameters.
func Func0[R any](b *Binding, fn func() (R, error)) func() (R, error) {
	mustMatchArity(b, 0)
	return func() (R, error) {
		return invoke(b, nil, fn)
	}
}

// Func1 returns fn wrapped by b. The argument is bound to the declared parameter.
func Func1[A, R any](b *Binding, fn func(A) (R, error)) func(A) (R, error) {
	mustMatchArity(b, 1)
	return func(a A) (R, error) {
		return invoke(b, []any{a}, func() (R, error) { return fn(a) })
	}
}

// Func2 returns fn wrapped by b. The arguments are bound to the two declared parameters.
func Func2[A1, A2, R any](b *Binding, fn func(A1, A2) (R, error)) func(A1, A2) (R, error) {
	mustMatchArity(b, 2)
	return func(a1 A1, a2 A2) (R, error) {
		return invoke(b, []any{a1, a2}, func() (R, error) { return fn(a1, a2) })
	}
}

// Proc0 returns fn, which has no result, wrapped by b.
func Proc0(b *Binding, fn func() error) func() error {
	mustMatchArity(b, 0)
	return func() error {
		return invokeVoid(b, nil, fn)
	}
}

// Proc1 returns fn, which has no result, wrapped by b.
func Proc1[A any](b *Binding, fn func(A) error) func(A) error {
	mustMatchArity(b, 1)
	return func(a A) error {
		return invokeVoid(b, []any{a}, func() error { return fn(a) })
	}
}

// Proc2 returns fn, which has no result, wrapped by b.
func Proc2[A1, A2 any](b *Binding, fn func(A1, A2) error) func(A1, A2) error {
	mustMatchArity(b, 2)
	return func(a1 A1, a2 A2) error {
		return invokeVoid(b, []any{a1, a2}, func() error { return fn(a1, a2) })
	}
}

// invoke and invokeVoid sit exactly one frame below Call, CallVoid and the
// wrapper closures, so every path reaches intercept at the same depth.
// traceCallerSkip depends on it.

func invoke[R any](b *Binding, args []any, fn func() (R, error)) (R, error) {
	var out R
	err := b.intercept(args, func() (Value, error) {
		r, err := fn()
		out = r
		return ResultOf(r), err
	})
	return out, err
}

func invokeVoid(b *Binding, args []any, fn func() error) error {
	return b.intercept(args, func() (Value, error) {
		return Absent, fn()
	})
}

func mustMatchArity(b *Binding, n int) {
	if err := b.checkArity(n); err != nil {
		panic(fmt.Errorf("interceptor: %w", err))
	}
}
