package project

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"project",
		logger.WithNamedLogger("project"),
		fx.Provide(NewService),
	)
}
