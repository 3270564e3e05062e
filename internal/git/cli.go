package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

const defaultBinary = "git"

// cli runs the git executable for primitives go-git lacks. Every call names
// its working directory explicitly.
type cli struct {
	binary string
}

func newCLI(binary string) *cli {
	if binary == "" {
		binary = defaultBinary
	}

	return &cli{binary: binary}
}

// run executes git with args inside dir. A failure carries git's stderr
// verbatim.
func (c *cli) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg) //nolint:err113 //verbatim tool output
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
