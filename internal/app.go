package internal

import (
	"context"

	"github.com/SakethSripada/DesktopDev/internal/assistant"
	"github.com/SakethSripada/DesktopDev/internal/config"
	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/SakethSripada/DesktopDev/internal/project"
	"github.com/SakethSripada/DesktopDev/internal/registry"
	"github.com/SakethSripada/DesktopDev/internal/repos"
	"github.com/SakethSripada/DesktopDev/internal/requester"
	"github.com/SakethSripada/DesktopDev/internal/server"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/SakethSripada/DesktopDev/pkg/badgerfx"
	"github.com/SakethSripada/DesktopDev/pkg/httpclientfx"
	"github.com/SakethSripada/DesktopDev/pkg/openapifx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		httpclientfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		openapifx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		workspace.Module(),
		git.Module(),
		registry.Module(),
		repos.Module(),
		requester.Module(),
		assistant.Module(),
		project.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 DesktopDev backend starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 DesktopDev backend shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
