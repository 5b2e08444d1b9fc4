package interceptor

import "fmt"

// LogValuer lets a type choose how it is displayed in trace lines.
// The returned value is displayed in place of the receiver.
type LogValuer interface {
	LogValue() any
}

// Value is an argument or result as seen by the interceptor: either absent
// (a void call, or a nil interface result) or present with an arbitrary
// payload. Display renders any Value without inspecting its type beyond
// the formatting interfaces.
type Value struct {
	v       any
	present bool
}

// Absent is the Value of a call that produced no result.
var Absent = Value{}

// ValueOf wraps v as a present Value.
func ValueOf(v any) Value {
	return Value{v: v, present: true}
}

// ResultOf wraps a call result. A nil interface result is treated as absent,
// the same as a void call. Typed nils (a nil *T, a nil map) stay present.
func ResultOf(v any) Value {
	if v == nil {
		return Absent
	}
	return ValueOf(v)
}

// Present reports whether the value holds a payload.
func (v Value) Present() bool {
	return v.present
}

// Interface returns the payload, or nil when the value is absent.
func (v Value) Interface() any {
	return v.v
}

// String returns the display string of the payload. Absent values display
// as the empty string.
func (v Value) String() string {
	if !v.present {
		return ""
	}
	return display(v.v)
}

// display renders a payload. LogValuer takes precedence; everything else is
// rendered by fmt, which honors error and fmt.Stringer and recovers from
// String methods that panic on nil receivers.
func display(v any) string {
	if lv, ok := v.(LogValuer); ok {
		return fmt.Sprint(lv.LogValue())
	}
	return fmt.Sprint(v)
}
