package git

import "time"

type AuthConfig struct {
	SSH   SSHAuthConfig
	HTTPS HTTPSAuthConfig
}

type SSHAuthConfig struct {
	DefaultPrivateKey string
}

type HTTPSAuthConfig struct {
	DefaultToken    string
	DefaultUsername string
}

// AuthorConfig is the commit identity used when git config has none.
type AuthorConfig struct {
	Name  string
	Email string
}

type Config struct {
	Timeout time.Duration
	// Binary is the git executable used for operations go-git does not implement.
	Binary string
	Author AuthorConfig
	Auth   AuthConfig
}
