package observability

// NoOpObserver is a no-op implementation of Observer.
// It can be used as a default value.
type NoOpObserver struct{}

// ObserveTransition does nothing (no-op).
func (n *NoOpObserver) ObserveTransition(t Transition) {
	// No-op
}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}
