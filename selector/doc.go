// Package selector decides which methods are traced.
//
// A call site is described by static metadata: its declaring type, the
// method, and the markers attached to each. Two independent rules make a
// call site eligible:
//
//  1. the declaring type carries the type marker, and the method is not
//     synthetic (generated accessors, String and similar helpers), or
//  2. the method carries the method marker. Explicit method marking is
//     always honored, synthetic or not.
//
// Eligibility is the union of both rules. Both markers default to "LogMe".
//
// Markers are plain data. They can be attached in code:
//
//	site := selector.CallSite{
//		Type:   selector.TypeInfo{Name: "bank.Account", Markers: []selector.Marker{selector.DefaultMarker}},
//		Method: selector.MethodInfo{Name: "deposit", Params: []string{"amount"}},
//	}
//	eligible := selector.NewSelector(selector.Config{}).Eligible(site)
//
// or declared in a YAML manifest, see Manifest.
//
// The selector is consulted once per call site when the site is bound by
// the interceptor package, not on every call.
package selector
