package git

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing/transport"
	"github.com/go-git/go-git/v6/plumbing/transport/http"
	"github.com/go-git/go-git/v6/plumbing/transport/ssh"
)

const (
	// transientRemote names the in-memory remote used by push and pull. It is
	// never written to the repository configuration.
	transientRemote = "desktopdev"
	originRemote    = "origin"

	tokenUsername = "x-access-token"
)

var scpLike = regexp.MustCompile(`^[\w.-]+@[\w.-]+:`)

// NormalizeRemoteURL adds the https scheme to bare host paths such as
// "github.com/user/repo.git". SSH, scp-like and local paths are kept.
func NormalizeRemoteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.Contains(raw, "://"),
		scpLike.MatchString(raw),
		filepath.IsAbs(raw),
		strings.HasPrefix(raw, "."):
		return raw
	}

	return "https://" + raw
}

// RedactURL strips any userinfo so the URL can be logged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}

	u.User = nil
	return u.String()
}

func isSSH(remoteURL string) bool {
	return strings.HasPrefix(remoteURL, "ssh://") || scpLike.MatchString(remoteURL)
}

func isHTTP(remoteURL string) bool {
	return strings.HasPrefix(remoteURL, "http://") || strings.HasPrefix(remoteURL, "https://")
}

// authMethod maps request credentials onto the transport's auth mechanism.
func (s *Service) authMethod(remoteURL string, creds Credentials) (transport.AuthMethod, error) {
	switch {
	case isSSH(remoteURL):
		if s.config.Auth.SSH.DefaultPrivateKey == "" {
			return nil, nil //nolint:nilnil //ssh agent or no auth
		}
		keys, err := ssh.NewPublicKeysFromFile("git", s.config.Auth.SSH.DefaultPrivateKey, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load ssh key: %w", err)
		}
		return keys, nil
	case isHTTP(remoteURL):
		username, token := creds.Username, creds.Token
		if token == "" {
			token = s.config.Auth.HTTPS.DefaultToken
		}
		if username == "" {
			username = s.config.Auth.HTTPS.DefaultUsername
		}
		if token == "" && username == "" {
			return nil, nil //nolint:nilnil //anonymous access
		}
		if username == "" {
			username = tokenUsername
		}
		return &http.BasicAuth{Username: username, Password: token}, nil
	}

	return nil, nil //nolint:nilnil //local transport
}

// resolveRemoteURL returns the request URL or, when empty, the URL of origin.
// The repository configuration is only read.
func resolveRemoteURL(repo *git.Repository, raw string) (string, error) {
	if normalized := NormalizeRemoteURL(raw); normalized != "" {
		return normalized, nil
	}

	remote, err := repo.Remote(originRemote)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return "", ErrRemoteURLRequired
	}
	if err != nil {
		return "", fmt.Errorf("failed to read origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrRemoteURLRequired
	}

	return urls[0], nil
}

func newTransientRemote(repo *git.Repository, remoteURL string) *git.Remote {
	return git.NewRemote(repo.Storer, &gitconfig.RemoteConfig{
		Name: transientRemote,
		URLs: []string{remoteURL},
	})
}
