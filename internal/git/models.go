package git

import "slices"

// State is a single porcelain status letter.
type State byte

const (
	StateUnmodified State = ' '
	StateUntracked  State = '?'
	StateModified   State = 'M'
	StateAdded      State = 'A'
	StateDeleted    State = 'D'
	StateRenamed    State = 'R'
	StateCopied     State = 'C'
	StateUnmerged   State = 'U'
)

// Staged reports whether the index holds a change for the file.
func (s State) Staged() bool {
	switch s {
	case StateModified, StateAdded, StateDeleted, StateRenamed, StateCopied:
		return true
	case StateUnmodified, StateUntracked, StateUnmerged:
		return false
	}
	return false
}

func (s State) String() string {
	return string(rune(s))
}

// FileStatus is one entry of a ChangeSet.
type FileStatus struct {
	Path        string
	Index       State
	WorkingTree State
}

// ChangeSet lists files with pending modifications, sorted by path.
type ChangeSet []FileStatus

// Lookup finds the entry for path.
func (c ChangeSet) Lookup(path string) (FileStatus, bool) {
	idx := slices.IndexFunc(c, func(f FileStatus) bool { return f.Path == path })
	if idx < 0 {
		return FileStatus{}, false
	}
	return c[idx], true
}

// Staged returns the paths with staged changes.
func (c ChangeSet) Staged() []string {
	staged := make([]string, 0, len(c))
	for _, f := range c {
		if f.Index.Staged() {
			staged = append(staged, f.Path)
		}
	}
	return staged
}

// Repository represents a cloned Git repository.
type Repository struct {
	Path string // Path to the cloned repository
	URL  string // Original repository URL, credentials stripped
}

// CommitSummary counts the changes introduced by a commit.
type CommitSummary struct {
	Changes    int
	Insertions int
	Deletions  int
}

// CommitResult describes a freshly created commit.
type CommitResult struct {
	Hash    string
	Branch  string
	Root    bool
	Author  string
	Summary CommitSummary
}

// Branch is a read-only projection of a local branch.
type Branch struct {
	Name      string
	IsCurrent bool
}

// BranchList holds the local branches and the checked-out one.
type BranchList struct {
	Branches []Branch
	Current  string
}

// Names returns the branch names in list order.
func (b BranchList) Names() []string {
	names := make([]string, len(b.Branches))
	for i, branch := range b.Branches {
		names[i] = branch.Name
	}
	return names
}

// PushResult describes a completed push.
type PushResult struct {
	Remote   string
	Branch   string
	UpToDate bool
}

// PullResult describes a completed pull.
type PullResult struct {
	Remote      string
	Branch      string
	UpToDate    bool
	FastForward bool
	From        string
	To          string
}
