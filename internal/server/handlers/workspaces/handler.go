package workspaces

import (
	"errors"
	"fmt"

	"github.com/SakethSripada/DesktopDev/internal/registry"
	"github.com/SakethSripada/DesktopDev/internal/server/validation"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	registrySvc *registry.Service
	resolver    *workspace.Resolver

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	registrySvc *registry.Service,
	resolver *workspace.Resolver,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		registrySvc: registrySvc,
		resolver:    resolver,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/workspaces")

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Delete("/", validation.DecorateWithBodyEx(h.validator, h.delete))
}

//	@Summary		List known workspaces
//	@Description	Workspaces cloned or attached through this server, most recent first
//	@Tags			workspaces
//	@Produce		json
//	@Success		200	{array}		WorkspaceResponse
//	@Failure		500	{object}	fiberfx.ErrorResponse
//	@Router			/workspaces [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.registrySvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	return c.JSON(lo.Map(items, func(w registry.Workspace, _ int) WorkspaceResponse {
		return WorkspaceResponse{
			ID:        w.ID,
			Path:      w.Path,
			RemoteURL: w.RemoteURL,
			Kind:      string(w.Kind),
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
		}
	}))
}

//	@Summary		Forget a workspace
//	@Description	Drop the workspace record. Files on disk are left untouched.
//	@Tags			workspaces
//	@Accept			json
//	@Param			request	body	DeleteRequest	true	"Workspace"
//	@Success		204
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/workspaces [delete]
func (h *Handler) delete(c *fiber.Ctx, req *DeleteRequest) error {
	path, err := h.resolver.Resolve(req.LocalPath)
	if err != nil {
		return err
	}

	if err = h.registrySvc.Forget(c.Context(), path); err != nil {
		return fmt.Errorf("failed to forget workspace: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, registry.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, workspace.ErrPathRequired):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
