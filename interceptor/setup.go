package interceptor

import (
	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/observability"
	"github.com/aalemi-dev/calltrace/selector"
)

// Interceptor binds call sites and traces the invocations of eligible ones.
//
// It holds no per-call state: every invocation builds its own CallContext
// and Timing, so bindings can be invoked from any number of goroutines.
type Interceptor struct {
	cfg      Config
	selector selector.Eligibility
	log      logger.Logger
	clock    Clock
	observer observability.Observer
}

// Option customizes an Interceptor.
type Option func(*Interceptor)

// WithClock replaces the system clock. Mostly useful in tests.
func WithClock(c Clock) Option {
	return func(i *Interceptor) {
		if c != nil {
			i.clock = c
		}
	}
}

// WithObserver attaches an observer that is told about every state
// transition of every traced invocation.
func WithObserver(o observability.Observer) Option {
	return func(i *Interceptor) {
		if o != nil {
			i.observer = o
		}
	}
}

// New creates an Interceptor that consults sel when binding call sites and
// writes trace lines through child loggers of log, one per declaring type.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//	icpt := interceptor.New(interceptor.Config{}, selector.NewSelector(selector.Config{}), log)
func New(cfg Config, sel selector.Eligibility, log logger.Logger, opts ...Option) *Interceptor {
	i := &Interceptor{
		cfg:      cfg,
		selector: sel,
		log:      log,
		clock:    systemClock{},
		observer: observability.NewNoOpObserver(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Bind resolves everything an invocation of site needs, once: whether the
// site is eligible and, if so, the logger scoped to its declaring type.
//
// Bind fails only when site is malformed, see selector.CallSite.Validate.
func (i *Interceptor) Bind(site selector.CallSite) (*Binding, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	b := &Binding{
		site:       site,
		eligible:   i.selector.Eligible(site),
		clock:      i.clock,
		observer:   i.observer,
		structured: i.cfg.StructuredFields,
	}
	if b.eligible {
		b.log = i.log.Named(site.Type.Name).WithCallerSkip(traceCallerSkip)
	}
	return b, nil
}

// MustBind is like Bind but panics on a malformed call site. It is meant for
// package level wiring where a bad site is a programming error.
func (i *Interceptor) MustBind(site selector.CallSite) *Binding {
	b, err := i.Bind(site)
	if err != nil {
		panic(err)
	}
	return b
}

// BindAll binds every site, stopping at the first malformed one.
func (i *Interceptor) BindAll(sites []selector.CallSite) ([]*Binding, error) {
	bindings := make([]*Binding, 0, len(sites))
	for _, site := range sites {
		b, err := i.Bind(site)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}
