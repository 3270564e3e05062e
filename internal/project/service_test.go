package project_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SakethSripada/DesktopDev/internal/project"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T, maxFileSize int64) (*project.Service, string) {
	t.Helper()

	base := t.TempDir()
	logger := zaptest.NewLogger(t)

	resolver, err := workspace.NewResolver(workspace.Config{BaseDir: base}, logger)
	require.NoError(t, err)

	return project.NewService(project.Config{MaxFileSize: maxFileSize}, resolver, workspace.NewLocker(), logger), base
}

func TestService_InsertReadList(t *testing.T) {
	svc, base := newTestService(t, 0)
	ctx := context.Background()

	require.NoError(t, svc.InsertCode(ctx, base, "src/main.go", "package main\n"))
	require.NoError(t, svc.InsertCode(ctx, base, "README.md", "# demo\n"))

	content, err := svc.ReadFile(ctx, base, "src/main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main\n", content)

	files, err := svc.ListFiles(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src"}, files)
}

func TestService_ConfinedToRoot(t *testing.T) {
	svc, base := newTestService(t, 0)
	ctx := context.Background()

	dir := filepath.Join(base, "project")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("secret"), 0o600))

	require.NoError(t, svc.InsertCode(ctx, dir, "../escape.txt", "x"))
	assert.FileExists(t, filepath.Join(dir, "escape.txt"))
	assert.NoFileExists(t, filepath.Join(base, "escape.txt"))

	_, err := svc.ReadFile(ctx, dir, "../secret.txt")
	require.Error(t, err)
}

func TestService_ReadFileErrors(t *testing.T) {
	svc, base := newTestService(t, 4)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(base, "big.txt"), []byte("too large"), 0o600))

	_, err := svc.ReadFile(ctx, base, "big.txt")
	require.ErrorIs(t, err, project.ErrFileTooLarge)

	_, err = svc.ReadFile(ctx, base, " ")
	require.ErrorIs(t, err, project.ErrFilePathRequired)

	_, err = svc.ReadFile(ctx, filepath.Join(base, "missing"), "a.txt")
	require.ErrorIs(t, err, workspace.ErrDirectoryNotFound)
}
