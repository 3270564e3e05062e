package requests

import (
	"errors"

	"github.com/SakethSripada/DesktopDev/internal/requester"
	"github.com/SakethSripada/DesktopDev/internal/server/apierrors"
	"github.com/SakethSripada/DesktopDev/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	requesterSvc *requester.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(requesterSvc *requester.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		requesterSvc: requesterSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Post("/request", validation.DecorateWithBodyEx(h.validator, h.send))
}

//	@Summary		Send an HTTP request
//	@Description	Replay an arbitrary HTTP request. A missing scheme defaults to http://.
//	@Tags			requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SendRequest	true	"Outbound request"
//	@Success		200		{object}	SendResponse
//	@Failure		500		{object}	apierrors.Response
//	@Router			/request [post]
func (h *Handler) send(c *fiber.Ctx, req *SendRequest) error {
	resp, err := h.requesterSvc.Do(c.Context(), requester.Request{
		Method: req.Method,
		URL:    req.URL,
		Headers: lo.Map(req.Headers, func(header Header, _ int) requester.Header {
			return requester.Header{Key: header.Key, Value: header.Value}
		}),
		Body: req.Body,
	})
	if err != nil {
		var upstream *requester.UpstreamError
		if errors.As(err, &upstream) {
			return apierrors.Write(c, fiber.StatusInternalServerError, err.Error(), upstream.Data)
		}

		return apierrors.Write(c, fiber.StatusInternalServerError, err.Error(), nil)
	}

	return c.JSON(SendResponse{Data: resp.Data, Status: resp.Status})
}
