package interceptor

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/observability"
	"github.com/aalemi-dev/calltrace/selector"
)

// FXModule defines the Fx module for the interceptor package.
//
// The module provides *Interceptor. An observability.Observer is picked up
// when one is present in the container.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    selector.FXModule,
//	    interceptor.FXModule,
//	    fx.Supply(logger.Config{Level: logger.Info}, selector.Config{}, interceptor.Config{}),
//	    fx.Invoke(func(i *interceptor.Interceptor) { ... }),
//	)
//
// Dependencies required by this module:
// - An interceptor.Config instance
// - A selector.Eligibility (selector.FXModule provides one)
// - A logger.Logger (logger.FXModule provides one)
var FXModule = fx.Module("interceptor",
	fx.Provide(newFromParams),
)

type params struct {
	fx.In

	Config   Config
	Selector selector.Eligibility
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
}

func newFromParams(p params) *Interceptor {
	return New(p.Config, p.Selector, p.Logger, WithObserver(p.Observer))
}
