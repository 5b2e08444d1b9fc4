package selector

// Selector classifies call sites as eligible or ineligible for tracing.
//
// A call site is eligible when
//   - its declaring type carries the type marker and the method is not synthetic, or
//   - the method itself carries the method marker, synthetic or not.
//
// Selector holds no mutable state. It is safe for concurrent use and the
// same CallSite always yields the same answer.
type Selector struct {
	typeMarker   Marker
	methodMarker Marker
}

// NewSelector creates a Selector for the markers in cfg.
// Empty markers default to DefaultMarker.
func NewSelector(cfg Config) *Selector {
	cfg = cfg.withDefaults()
	return &Selector{
		typeMarker:   cfg.TypeMarker,
		methodMarker: cfg.MethodMarker,
	}
}

// Eligible reports whether invocations of site should be intercepted.
func (s *Selector) Eligible(site CallSite) bool {
	return s.MarkedMethod(site.Method) || (s.MarkedType(site.Type) && !site.Method.Synthetic)
}

// MarkedType reports whether t carries the type marker.
func (s *Selector) MarkedType(t TypeInfo) bool {
	return Has(t.Markers, s.typeMarker)
}

// MarkedMethod reports whether m carries the method marker.
func (s *Selector) MarkedMethod(m MethodInfo) bool {
	return Has(m.Markers, s.methodMarker)
}

// TypeMarker returns the marker the type-level rule looks for.
func (s *Selector) TypeMarker() Marker {
	return s.typeMarker
}

// MethodMarker returns the marker the method-level rule looks for.
func (s *Selector) MethodMarker() Marker {
	return s.methodMarker
}
