package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Handler serves the Swagger UI and the generated OpenAPI document.
type Handler struct {
	config Config
	spec   *swag.Spec

	logger *zap.Logger
}

func New(spec *swag.Spec, config Config, logger *zap.Logger) *Handler {
	if config.PublicHost != "" {
		spec.Host = config.PublicHost
	}
	if config.PublicPath != "" {
		spec.BasePath = config.PublicPath
	}

	return &Handler{
		config: config,
		spec:   spec,

		logger: logger,
	}
}

// Register mounts the UI on r. Nothing is mounted when the docs are disabled.
func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		h.logger.Info("openapi docs disabled")
		return
	}

	h.logger.Info("serving openapi docs", zap.String("instance", h.spec.InstanceName()))
	r.Get("/*", swagger.HandlerDefault)
}
