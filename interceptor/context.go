package interceptor

import (
	"strconv"
	"strings"
	"time"
)

// Param is one parameter binding of an invocation.
type Param struct {
	Name  string
	Value Value
}

// CallContext identifies one invocation. It is built fresh for every call
// and never modified.
type CallContext struct {
	// TypeName is the declaring type of the method.
	TypeName string

	// MethodName is the invoked method.
	MethodName string

	// Params holds the arguments in declaration order.
	Params []Param
}

// Outcome is the result of running the original call. Exactly one of Value
// and Err is meaningful: when Err is nil the call succeeded with Value.
type Outcome struct {
	Value Value
	Err   error
}

// Failed reports whether the call failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Timing holds the two monotonic readings taken around the original call.
type Timing struct {
	Start time.Time
	Stop  time.Time
}

// Elapsed returns Stop - Start, never negative.
func (t Timing) Elapsed() time.Duration {
	d := t.Stop.Sub(t.Start)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedMillis returns the elapsed time in whole milliseconds, truncated toward zero.
func (t Timing) ElapsedMillis() int64 {
	return t.Elapsed().Milliseconds()
}

// newCallContext pairs argument values with the declared parameter names.
// Callers have checked the arity already. Arguments without a declared name,
// or with an empty one, are named by position: arg0, arg1, ...
func newCallContext(typeName, methodName string, names []string, args []any) CallContext {
	cc := CallContext{
		TypeName:   typeName,
		MethodName: methodName,
	}
	if len(args) == 0 {
		return cc
	}

	cc.Params = make([]Param, len(args))
	for i, arg := range args {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		if name == "" {
			name = "arg" + strconv.Itoa(i)
		}
		cc.Params[i] = Param{Name: name, Value: ValueOf(arg)}
	}
	return cc
}

// QualifiedName returns "<TypeName>.<MethodName>".
func (cc CallContext) QualifiedName() string {
	return cc.TypeName + "." + cc.MethodName
}

// FormatParams renders the bindings as {a=1, b=2}, in declaration order.
func (cc CallContext) FormatParams() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range cc.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(p.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
