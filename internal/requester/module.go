package requester

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"requester",
		logger.WithNamedLogger("requester"),
		fx.Provide(NewService),
	)
}
