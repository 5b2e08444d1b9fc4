// Command calltrace runs a small traced bank account workload. It shows the
// interceptor wired through fx with the configured logger, selector and
// marker manifest.
//
// Usage:
//
//	calltrace [-f calltrace.yaml] [--level debug] [--log-file trace.log] [-m manifest.yaml] [-d 50 -d 20]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/aalemi-dev/calltrace/config"
	"github.com/aalemi-dev/calltrace/interceptor"
	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/selector"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	app := newApp(cfg, workload{Deposits: opts.Deposits})
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

// newApp assembles the application. The workload runs while the graph is
// built, so its error surfaces through app.Err.
func newApp(cfg config.Config, w workload, opts ...fx.Option) *fx.App {
	return fx.New(append([]fx.Option{
		fx.Supply(cfg, w),
		config.FXModule,
		logger.FXModule,
		selector.FXModule,
		interceptor.FXModule,
		fx.WithLogger(func(l *logger.LoggerClient) fxevent.Logger {
			zl := &fxevent.ZapLogger{Logger: l.Zap.Named("fx")}
			zl.UseLogLevel(zapcore.DebugLevel)
			return zl
		}),
		fx.Provide(NewAccount),
		fx.Invoke(runWorkload),
	}, opts...)...)
}
