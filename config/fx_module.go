package config

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/calltrace/interceptor"
	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/selector"
)

// FXModule defines the Fx module for the config package.
//
// The module splits a Config into logger.Config, selector.Config and
// interceptor.Config, the inputs of the component modules.
//
// Usage:
//
//	cfg, err := config.Load(path)
//	...
//	app := fx.New(
//	    config.FXModule,
//	    fx.Supply(cfg),
//	    logger.FXModule,
//	    selector.FXModule,
//	    interceptor.FXModule,
//	)
//
// Dependencies required by this module:
// - A config.Config instance must be available in the dependency injection container
var FXModule = fx.Module("config",
	fx.Provide(split),
)

type sections struct {
	fx.Out

	Logger      logger.Config
	Selector    selector.Config
	Interceptor interceptor.Config
}

func split(cfg Config) sections {
	return sections{
		Logger:      cfg.Logger,
		Selector:    cfg.Selector,
		Interceptor: cfg.Interceptor,
	}
}
