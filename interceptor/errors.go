package interceptor

import "errors"

// ErrArityMismatch is returned, or raised by the FuncN and ProcN wrappers,
// when the arguments of an invocation do not match the parameters declared
// for its call site.
var ErrArityMismatch = errors.New("argument count does not match declared parameters")
