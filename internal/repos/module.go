package repos

import (
	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/SakethSripada/DesktopDev/internal/registry"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"repos",
		logger.WithNamedLogger("repos"),
		fx.Provide(func(svc *git.Service) GitAdapter { return svc }, fx.Private),
		fx.Provide(func(svc *registry.Service) Registry { return svc }, fx.Private),
		fx.Provide(NewService),
	)
}
