package openapifx

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// Module provides the docs Handler. The *swag.Spec is supplied by the server.
func Module() fx.Option {
	return fx.Module(
		"openapi",
		logger.WithNamedLogger("openapi"),
		fx.Provide(New),
	)
}
