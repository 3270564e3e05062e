package openapifx

type Config struct {
	Enabled bool
	// PublicHost and PublicPath override the host and base path in the served document.
	PublicHost string
	PublicPath string
}
