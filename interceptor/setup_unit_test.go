package interceptor

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/observability"
	"github.com/aalemi-dev/calltrace/selector"
)

// stepClock returns a reading that advances by step on every call.
type stepClock struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	reads int
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	c.reads++
	return t
}

func (c *stepClock) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// recordingObserver keeps every transition it is shown.
type recordingObserver struct {
	mu          sync.Mutex
	transitions []observability.Transition
}

func (r *recordingObserver) ObserveTransition(t observability.Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, t)
}

func (r *recordingObserver) All() []observability.Transition {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]observability.Transition, len(r.transitions))
	copy(out, r.transitions)
	return out
}

func newObservedLogger() (*logger.LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromZap(zap.New(core)), logs
}

// newTestInterceptor wires an Interceptor with the default selector, an
// observed logger and a step clock.
func newTestInterceptor(step time.Duration, opts ...Option) (*Interceptor, *observer.ObservedLogs, *stepClock) {
	log, logs := newObservedLogger()
	clock := newStepClock(step)
	opts = append([]Option{WithClock(clock)}, opts...)
	return New(Config{}, selector.NewSelector(selector.Config{}), log, opts...), logs, clock
}

func markedType(name string) selector.TypeInfo {
	return selector.TypeInfo{Name: name, Markers: []selector.Marker{selector.DefaultMarker}}
}

func accountSite(method string, params ...string) selector.CallSite {
	return selector.CallSite{
		Type:   markedType("Account"),
		Method: selector.MethodInfo{Name: method, Params: params},
	}
}

func messages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.All() {
		out = append(out, e.Message)
	}
	return out
}

// clockProbeLogger records how many clock readings had been taken each time
// a line is logged.
type clockProbeLogger struct {
	clock *stepClock
	reads *[]int
}

func (l *clockProbeLogger) record() { *l.reads = append(*l.reads, l.clock.Reads()) }

func (l *clockProbeLogger) Debug(string, error, ...map[string]interface{}) { l.record() }
func (l *clockProbeLogger) Info(string, error, ...map[string]interface{})  { l.record() }
func (l *clockProbeLogger) Warn(string, error, ...map[string]interface{})  { l.record() }
func (l *clockProbeLogger) Error(string, error, ...map[string]interface{}) { l.record() }
func (l *clockProbeLogger) Fatal(string, error, ...map[string]interface{}) { l.record() }
func (l *clockProbeLogger) Named(string) logger.Logger                     { return l }
func (l *clockProbeLogger) WithCallerSkip(int) logger.Logger               { return l }

// countingSelector counts eligibility decisions.
type countingSelector struct {
	inner selector.Eligibility
	calls int
}

func (c *countingSelector) Eligible(site selector.CallSite) bool {
	c.calls++
	return c.inner.Eligible(site)
}
