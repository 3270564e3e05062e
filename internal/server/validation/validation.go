package validation

import (
	"errors"

	fxvalidation "github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// Validatable is implemented by requests with checks validator tags cannot express.
type Validatable interface {
	Validate() error
}

// DecorateWithBodyEx validates the body with fiberfx and then runs the
// optional Validate hook. Tag failures keep fiberfx's structured payload;
// malformed bodies and hook failures become 400s.
func DecorateWithBodyEx[T any](v *validator.Validate, h func(c *fiber.Ctx, req *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := fxvalidation.ValidateBody[T](c, v)
		if err != nil {
			if IsRequestError(err) {
				return err
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if r, ok := any(req).(Validatable); ok {
			if err = r.Validate(); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		return h(c, req)
	}
}

// IsRequestError reports whether err was raised while decoding or validating
// the request body rather than by the handler's service.
func IsRequestError(err error) bool {
	if _, ok := lo.ErrorsAs[fxvalidation.Errors](err); ok {
		return true
	}

	var fiberErr *fiber.Error
	return errors.As(err, &fiberErr)
}
