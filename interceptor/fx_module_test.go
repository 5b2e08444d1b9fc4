package interceptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/observability"
	"github.com/aalemi-dev/calltrace/selector"
)

func TestFXModule_ProvidesInterceptor(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger()
	var icpt *Interceptor

	app := fxtest.New(t,
		selector.FXModule,
		FXModule,
		fx.Supply(selector.Config{}, Config{}),
		fx.Provide(func() logger.Logger { return log }),
		fx.Populate(&icpt),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, icpt)
	b := icpt.MustBind(accountSite("reset"))
	require.NoError(t, CallVoid(b, nil, func() error { return nil }))
	assert.Equal(t, 2, logs.Len())
}

func TestFXModule_PicksUpObserver(t *testing.T) {
	t.Parallel()
	log, _ := newObservedLogger()
	obs := &recordingObserver{}
	var icpt *Interceptor

	app := fxtest.New(t,
		selector.FXModule,
		FXModule,
		fx.Supply(selector.Config{}, Config{}),
		fx.Provide(
			func() logger.Logger { return log },
			func() observability.Observer { return obs },
		),
		fx.Populate(&icpt),
	)

	app.RequireStart()
	defer app.RequireStop()

	b := icpt.MustBind(accountSite("reset"))
	require.NoError(t, CallVoid(b, nil, func() error { return nil }))
	assert.Len(t, obs.All(), 3)
}

func TestFXModule_WithLoggerModule(t *testing.T) {
	t.Parallel()
	var icpt *Interceptor

	app := fxtest.New(t,
		logger.FXModule,
		selector.FXModule,
		FXModule,
		fx.Supply(logger.Config{Level: logger.Error}, selector.Config{}, Config{}),
		fx.Populate(&icpt),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, icpt)
}
