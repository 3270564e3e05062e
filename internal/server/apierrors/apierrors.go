// Package apierrors writes the JSON error bodies the desktop UI expects.
package apierrors

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	failureKey     = "apierrors.failure"
	defaultFailure = "Internal server error."
)

// Response is the error body: a human readable message plus optional details.
type Response struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Write sends status with a Response body.
func Write(c *fiber.Ctx, status int, message string, details any) error {
	return c.Status(status).JSON(Response{Error: message, Details: details})
}

// WithFailure sets the message used by Fallback for unclassified errors of next.
func WithFailure(message string, next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(failureKey, message)
		return next(c)
	}
}

// Fallback reports err as 500 with the route's failure message and the
// verbatim error text in details.
func Fallback(c *fiber.Ctx, logger *zap.Logger, err error) error {
	message, ok := c.Locals(failureKey).(string)
	if !ok {
		message = defaultFailure
	}

	logger.Error(message, zap.String("path", c.Path()), zap.Error(err))

	return Write(c, fiber.StatusInternalServerError, message, err.Error())
}
