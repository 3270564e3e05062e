package repos

import (
	"path/filepath"
	"strings"

	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/samber/lo"
)

// NormalizeFiles trims entries, drops blanks and duplicates, and keeps the
// order of first occurrence.
func NormalizeFiles(files []string) []string {
	cleaned := lo.FilterMap(files, func(file string, _ int) (string, bool) {
		file = strings.TrimSpace(file)
		if file == "" {
			return "", false
		}
		return filepath.ToSlash(filepath.Clean(file)), true
	})

	return lo.Uniq(cleaned)
}

// UnstagedFiles returns the requested files whose index holds no change,
// preserving request order. Files absent from the change set count as
// unstaged.
func UnstagedFiles(changes git.ChangeSet, files []string) []string {
	return lo.Filter(files, func(file string, _ int) bool {
		entry, ok := changes.Lookup(file)
		return !ok || !entry.Index.Staged()
	})
}
