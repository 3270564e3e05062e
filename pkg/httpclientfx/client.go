package httpclientfx

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	maxIdleConnDuration = 30 * time.Second
	maxConnsPerHost     = 64
)

// New returns the shared outbound client. Timeouts are set per request.
func New(logger *zap.Logger) *fasthttp.Client {
	logger.Debug("creating outbound HTTP client")

	//nolint:exhaustruct //defaults are fine
	return &fasthttp.Client{
		Name:                     "DesktopDev",
		MaxConnsPerHost:          maxConnsPerHost,
		MaxIdleConnDuration:      maxIdleConnDuration,
		NoDefaultUserAgentHeader: false,
	}
}
