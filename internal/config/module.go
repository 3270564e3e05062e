package config

import (
	"github.com/SakethSripada/DesktopDev/internal/assistant"
	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/SakethSripada/DesktopDev/internal/project"
	"github.com/SakethSripada/DesktopDev/internal/requester"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/SakethSripada/DesktopDev/pkg/badgerfx"
	"github.com/SakethSripada/DesktopDev/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir: cfg.Storage.DataDir,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Timeout: cfg.Git.Timeout,
				Binary:  cfg.Git.Binary,
				Author: git.AuthorConfig{
					Name:  cfg.Git.Author.Name,
					Email: cfg.Git.Author.Email,
				},
				Auth: git.AuthConfig{
					SSH: git.SSHAuthConfig{
						DefaultPrivateKey: cfg.Git.Auth.SSH.DefaultPrivateKey,
					},
					HTTPS: git.HTTPSAuthConfig{
						DefaultToken:    cfg.Git.Auth.HTTPS.DefaultToken,
						DefaultUsername: cfg.Git.Auth.HTTPS.DefaultUsername,
					},
				},
			}
		}),
		fx.Provide(func(cfg Config) workspace.Config {
			return workspace.Config{
				BaseDir: cfg.Workspace.BaseDir,
			}
		}),
		fx.Provide(func(cfg Config) assistant.Config {
			return assistant.Config{
				APIURL:       cfg.Assistant.APIURL,
				APIKey:       cfg.Assistant.APIKey,
				Model:        cfg.Assistant.Model,
				MaxTokens:    cfg.Assistant.MaxTokens,
				SystemPrompt: cfg.Assistant.SystemPrompt,
				Timeout:      cfg.Assistant.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) requester.Config {
			return requester.Config{
				Timeout: cfg.Requester.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) project.Config {
			return project.Config{
				MaxFileSize: cfg.Project.MaxFileSize,
			}
		}),
	)
}
