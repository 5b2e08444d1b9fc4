package observability_test

import (
	"testing"

	"github.com/aalemi-dev/calltrace/observability"
	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	cases := map[observability.State]string{
		observability.NotStarted: "NotStarted",
		observability.PreLogged:  "PreLogged",
		observability.Executing:  "Executing",
		observability.Completed:  "Completed",
		observability.Failed:     "Failed",
		observability.State(99):  "Unknown",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
}

func TestStateTerminal(t *testing.T) {
	assert.False(t, observability.NotStarted.Terminal())
	assert.False(t, observability.PreLogged.Terminal())
	assert.False(t, observability.Executing.Terminal())
	assert.True(t, observability.Completed.Terminal())
	assert.True(t, observability.Failed.Terminal())
}

func TestNoOpObserver(t *testing.T) {
	observer := observability.NewNoOpObserver()

	assert.NotPanics(t, func() {
		observer.ObserveTransition(observability.Transition{
			TypeName:   "Account",
			MethodName: "deposit",
			From:       observability.NotStarted,
			To:         observability.PreLogged,
		})
	})
}
