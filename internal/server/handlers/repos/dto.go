package repos

import (
	"strings"

	"github.com/SakethSripada/DesktopDev/internal/git"
)

type credentials struct {
	GithubUsername string `json:"githubUsername"`
	GithubToken    string `json:"githubToken"`
}

func (c credentials) toDomain() git.Credentials {
	return git.Credentials{Username: c.GithubUsername, Token: c.GithubToken}
}

// fileList accepts the legacy comma separated filesToCommit and an explicit files array.
type fileList struct {
	FilesToCommit string   `json:"filesToCommit"`
	Files         []string `json:"files"`
}

func (f fileList) paths() []string {
	paths := make([]string, 0, len(f.Files))
	if f.FilesToCommit != "" {
		paths = append(paths, strings.Split(f.FilesToCommit, ",")...)
	}
	return append(paths, f.Files...)
}

// ConnectRequest represents the request payload for cloning a repository.
type ConnectRequest struct {
	credentials

	RepoURL   string `json:"repoUrl"   validate:"required"`
	LocalPath string `json:"localPath" validate:"required"`
}

// PathRequest represents a request addressing a workspace only.
type PathRequest struct {
	LocalPath string `json:"localPath" validate:"required"`
}

// CheckoutRequest represents the request payload for switching branches.
type CheckoutRequest struct {
	BranchName string `json:"branchName" validate:"required"`
	LocalPath  string `json:"localPath"  validate:"required"`
	Create     bool   `json:"create"`
}

// StageRequest represents the request payload for staging files.
type StageRequest struct {
	fileList

	LocalPath string `json:"localPath" validate:"required"`
}

// CommitRequest represents the request payload for the commit workflow.
type CommitRequest struct {
	fileList

	CommitMessage string `json:"commitMessage"`
	LocalPath     string `json:"localPath"  validate:"required"`
	AutoStage     bool   `json:"autoStage"`
	BranchName    string `json:"branchName"`
}

// RemoteRequest represents the request payload for push and pull.
type RemoteRequest struct {
	credentials

	BranchName string `json:"branchName"`
	LocalPath  string `json:"localPath" validate:"required"`
	RemoteURL  string `json:"remoteUrl"`
}

func (r RemoteRequest) toDomain() git.RemoteRequest {
	return git.RemoteRequest{
		URL:         r.RemoteURL,
		Branch:      r.BranchName,
		Credentials: r.credentials.toDomain(),
	}
}

// StashRequest represents the request payload for stashing changes.
type StashRequest struct {
	LocalPath    string `json:"localPath"    validate:"required"`
	StashMessage string `json:"stashMessage"`
}

// MessageResponse is the generic success body.
type MessageResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// UnstagedResponse is returned when requested files are not staged.
type UnstagedResponse struct {
	Error         string   `json:"error"`
	UnstagedFiles []string `json:"unstagedFiles"`
}

// FileStatusResponse is one changed file.
type FileStatusResponse struct {
	Path       string `json:"path"`
	Index      string `json:"index"`
	WorkingDir string `json:"working_dir"`
}

// StatusResponse lists the changed files of a workspace.
type StatusResponse struct {
	ChangedFiles []FileStatusResponse `json:"changedFiles"`
}

// BranchesResponse lists local branches.
type BranchesResponse struct {
	Branches      []string `json:"branches"`
	CurrentBranch string   `json:"currentBranch"`
}

// FilesResponse lists directory entries.
type FilesResponse struct {
	Files []string `json:"files"`
}

type CommitSummary struct {
	Changes    int `json:"changes"`
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
}

type CommitDetails struct {
	Hash    string        `json:"commit"`
	Branch  string        `json:"branch"`
	Root    bool          `json:"root"`
	Author  string        `json:"author"`
	Summary CommitSummary `json:"summary"`
}

type PushDetails struct {
	Remote   string `json:"remote"`
	Branch   string `json:"branch"`
	UpToDate bool   `json:"upToDate"`
}

type PullDetails struct {
	Remote      string `json:"remote"`
	Branch      string `json:"branch"`
	UpToDate    bool   `json:"upToDate"`
	FastForward bool   `json:"fastForward"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
}

func newChangedFiles(changes git.ChangeSet) []FileStatusResponse {
	files := make([]FileStatusResponse, len(changes))
	for i, f := range changes {
		files[i] = FileStatusResponse{
			Path:       f.Path,
			Index:      f.Index.String(),
			WorkingDir: f.WorkingTree.String(),
		}
	}
	return files
}

func newCommitDetails(result *git.CommitResult) CommitDetails {
	return CommitDetails{
		Hash:   result.Hash,
		Branch: result.Branch,
		Root:   result.Root,
		Author: result.Author,
		Summary: CommitSummary{
			Changes:    result.Summary.Changes,
			Insertions: result.Summary.Insertions,
			Deletions:  result.Summary.Deletions,
		},
	}
}
