package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`

	OpenAPI openAPIConfig `koanf:"openapi"`
}

type openAPIConfig struct {
	Enabled    bool   `koanf:"enabled"`
	PublicHost string `koanf:"public_host"`
	PublicPath string `koanf:"public_path"`
}

type storageConfig struct {
	DataDir string `koanf:"data_dir"`
}

type gitAuthConfig struct {
	SSH   gitSSHAuthConfig   `koanf:"ssh"`
	HTTPS gitHTTPSAuthConfig `koanf:"https"`
}

type gitSSHAuthConfig struct {
	DefaultPrivateKey string `koanf:"default_private_key"`
}

type gitHTTPSAuthConfig struct {
	DefaultToken    string `koanf:"default_token"`
	DefaultUsername string `koanf:"default_username"`
}

type gitAuthorConfig struct {
	Name  string `koanf:"name"`
	Email string `koanf:"email"`
}

type gitConfig struct {
	Timeout time.Duration   `koanf:"timeout"`
	Binary  string          `koanf:"binary"`
	Author  gitAuthorConfig `koanf:"author"`
	Auth    gitAuthConfig   `koanf:"auth"`
}

type workspaceConfig struct {
	BaseDir string `koanf:"base_dir"`
}

type assistantConfig struct {
	APIURL       string        `koanf:"api_url"`
	APIKey       string        `koanf:"api_key"`
	Model        string        `koanf:"model"`
	MaxTokens    int           `koanf:"max_tokens"`
	SystemPrompt string        `koanf:"system_prompt"`
	Timeout      time.Duration `koanf:"timeout"`
}

type requesterConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

type projectConfig struct {
	MaxFileSize int64 `koanf:"max_file_size"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage   storageConfig   `koanf:"storage"`
	Git       gitConfig       `koanf:"git"`
	Workspace workspaceConfig `koanf:"workspace"`

	Assistant assistantConfig `koanf:"assistant"`
	Requester requesterConfig `koanf:"requester"`
	Project   projectConfig   `koanf:"project"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:5000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
			OpenAPI: openAPIConfig{
				Enabled:    true,
				PublicPath: "/",
			},
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		Git: gitConfig{
			Timeout: 30 * time.Second,
			Binary:  "git",
			Author: gitAuthorConfig{
				Name:  "DesktopDev",
				Email: "desktopdev@localhost",
			},
		},

		Workspace: workspaceConfig{
			BaseDir: "",
		},

		Assistant: assistantConfig{
			APIURL:       "https://api.openai.com/v1/chat/completions",
			Model:        "gpt-3.5-turbo",
			MaxTokens:    300,
			SystemPrompt: "You are a helpful assistant.",
			Timeout:      60 * time.Second,
		},

		Requester: requesterConfig{
			Timeout: 30 * time.Second,
		},

		Project: projectConfig{
			MaxFileSize: 10 << 20,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
