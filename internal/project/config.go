package project

type Config struct {
	// MaxFileSize caps ReadFile. Zero disables the limit.
	MaxFileSize int64
}
