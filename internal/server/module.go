package server

import (
	"github.com/SakethSripada/DesktopDev/internal/server/docs"
	"github.com/SakethSripada/DesktopDev/internal/server/handlers/assistant"
	"github.com/SakethSripada/DesktopDev/internal/server/handlers/repos"
	"github.com/SakethSripada/DesktopDev/internal/server/handlers/requests"
	"github.com/SakethSripada/DesktopDev/internal/server/handlers/workspaces"
	"github.com/SakethSripada/DesktopDev/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(repos.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(requests.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(assistant.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(workspaces.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App) {
					// Health endpoint
					healthHandler.Register(app)

					openapiHandler.Register(app.Group("/docs"))

					// The desktop UI calls the legacy routes at the root
					root := app.Group("")
					root.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(root)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
