package workspace

type Config struct {
	// BaseDir anchors relative workspace paths. Empty means the user's home directory.
	BaseDir string
}
