package git

// Operation names a Git primitive.
type Operation string

const (
	OpClone    Operation = "clone"
	OpStatus   Operation = "status"
	OpAdd      Operation = "add"
	OpCommit   Operation = "commit"
	OpPush     Operation = "push"
	OpPull     Operation = "pull"
	OpStash    Operation = "stash"
	OpBranches Operation = "branches"
	OpCheckout Operation = "checkout"
)

// Credentials are request scoped and never persisted.
type Credentials struct {
	Username string
	Token    string
}

func (c Credentials) IsZero() bool {
	return c.Username == "" && c.Token == ""
}

// CloneRequest represents the request to clone a repository.
type CloneRequest struct {
	URL         string // Git repository URL
	Directory   string // Canonical directory to clone into
	Credentials Credentials
}

// RemoteRequest describes a single push or pull against a transient remote.
type RemoteRequest struct {
	URL         string // Remote URL, empty means the URL of the existing origin remote
	Branch      string // Branch name, empty means the current branch
	Credentials Credentials
}

// CheckoutRequest selects the branch to switch to.
type CheckoutRequest struct {
	Branch string
	Create bool // Create the branch from HEAD when it does not exist
}
