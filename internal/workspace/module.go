package workspace

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"workspace",
		logger.WithNamedLogger("workspace"),
		fx.Provide(NewResolver),
		fx.Provide(NewLocker),
	)
}
