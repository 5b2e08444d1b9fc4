package selector

import "fmt"

// Marker is a declarative tag attached to a type or a method.
type Marker string

// TypeInfo is the static metadata of a declaring type.
type TypeInfo struct {
	// Name is the stable, qualified name of the type, e.g. "bank.Account".
	// It also names the logger the type's traces are written to.
	Name string

	// Markers are the markers attached to the type itself.
	Markers []Marker
}

// MethodInfo is the static metadata of a method.
type MethodInfo struct {
	// Name is the method name as it appears in trace lines.
	Name string

	// Synthetic marks generated methods (accessors, String, equality helpers
	// and the like). They are excluded from the type-level rule.
	Synthetic bool

	// Markers are the markers attached to the method itself.
	Markers []Marker

	// Params lists the declared parameter names in declaration order.
	Params []string
}

// CallSite identifies one method whose invocations may be traced.
type CallSite struct {
	Type   TypeInfo
	Method MethodInfo
}

// Validate checks that the call site is well formed: both names are set and
// parameter names are unique.
func (s CallSite) Validate() error {
	if s.Type.Name == "" {
		return ErrEmptyTypeName
	}
	if s.Method.Name == "" {
		return fmt.Errorf("%s: %w", s.Type.Name, ErrEmptyMethodName)
	}
	seen := make(map[string]struct{}, len(s.Method.Params))
	for _, p := range s.Method.Params {
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%s.%s: %w: %s", s.Type.Name, s.Method.Name, ErrDuplicateParameter, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Eligibility decides whether a call site is traced.
//
// This interface is implemented by the concrete *Selector type.
type Eligibility interface {
	// Eligible reports whether invocations of site should be intercepted.
	Eligible(site CallSite) bool
}

// Has reports whether markers contains m.
func Has(markers []Marker, m Marker) bool {
	for _, candidate := range markers {
		if candidate == m {
			return true
		}
	}
	return false
}
