package httpclientfx

import (
	"context"

	"github.com/go-core-fx/logger"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"httpclientfx",
		logger.WithNamedLogger("httpclientfx"),
		fx.Provide(New),
		fx.Invoke(func(client *fasthttp.Client, logger *zap.Logger, lifecycle fx.Lifecycle) {
			lifecycle.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					logger.Info("closing idle outbound connections")
					client.CloseIdleConnections()
					return nil
				},
			})
		}),
	)
}
