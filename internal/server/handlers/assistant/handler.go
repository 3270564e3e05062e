package assistant

import (
	"errors"

	"github.com/SakethSripada/DesktopDev/internal/assistant"
	"github.com/SakethSripada/DesktopDev/internal/project"
	"github.com/SakethSripada/DesktopDev/internal/server/apierrors"
	"github.com/SakethSripada/DesktopDev/internal/server/validation"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	assistantSvc *assistant.Service
	projectSvc   *project.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	assistantSvc *assistant.Service,
	projectSvc *project.Service,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		assistantSvc: assistantSvc,
		projectSvc:   projectSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/api")

	r.Use(h.errorsHandler)
	r.Post("/generate",
		apierrors.WithFailure("Error generating response", validation.DecorateWithBodyEx(h.validator, h.generate)))
	r.Post("/continue-generation",
		apierrors.WithFailure("Error generating response", validation.DecorateWithBodyEx(h.validator, h.continueGeneration)))
	r.Post("/list-files",
		apierrors.WithFailure("Error reading directory", validation.DecorateWithBodyEx(h.validator, h.listFiles)))
	r.Post("/read-file",
		apierrors.WithFailure("Error reading file", validation.DecorateWithBodyEx(h.validator, h.readFile)))
	r.Post("/insert-code",
		apierrors.WithFailure("Error inserting code", validation.DecorateWithBodyEx(h.validator, h.insertCode)))
}

//	@Summary		Generate a chat completion
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GenerateRequest	true	"Prompt and history"
//	@Success		200		{object}	GenerateResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/api/generate [post]
func (h *Handler) generate(c *fiber.Ctx, req *GenerateRequest) error {
	reply, err := h.assistantSvc.Generate(c.Context(), req.Prompt, toMessages(req.ConversationHistory))
	if err != nil {
		return err
	}

	return c.JSON(GenerateResponse{Response: reply.Text, IsContinued: reply.IsContinued})
}

//	@Summary		Continue a truncated completion
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ContinueRequest	true	"Conversation history"
//	@Success		200		{object}	GenerateResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/api/continue-generation [post]
func (h *Handler) continueGeneration(c *fiber.Ctx, req *ContinueRequest) error {
	reply, err := h.assistantSvc.Continue(c.Context(), toMessages(req.ConversationHistory))
	if err != nil {
		return err
	}

	return c.JSON(GenerateResponse{Response: reply.Text, IsContinued: reply.IsContinued})
}

//	@Summary		List project files
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ListFilesRequest	true	"Project"
//	@Success		200		{object}	ListFilesResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/api/list-files [post]
func (h *Handler) listFiles(c *fiber.Ctx, req *ListFilesRequest) error {
	files, err := h.projectSvc.ListFiles(c.Context(), req.Path)
	if err != nil {
		return err
	}

	return c.JSON(ListFilesResponse{Files: files})
}

//	@Summary		Read a project file
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReadFileRequest	true	"File"
//	@Success		200		{object}	ReadFileResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/api/read-file [post]
func (h *Handler) readFile(c *fiber.Ctx, req *ReadFileRequest) error {
	content, err := h.projectSvc.ReadFile(c.Context(), req.ProjectPath, req.FilePath)
	if err != nil {
		return err
	}

	return c.JSON(ReadFileResponse{Content: content})
}

//	@Summary		Insert generated code into a file
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InsertCodeRequest	true	"Code"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/api/insert-code [post]
func (h *Handler) insertCode(c *fiber.Ctx, req *InsertCodeRequest) error {
	if err := h.projectSvc.InsertCode(c.Context(), req.Path, req.FileName, req.Code); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Code inserted into file: " + req.FileName})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if validation.IsRequestError(err) {
		return err //nolint:wrapcheck //handled by the validation middleware and app error handler
	}

	switch {
	case errors.Is(err, workspace.ErrPathRequired):
		return apierrors.Write(c, fiber.StatusBadRequest, "Valid project path is required", nil)
	case errors.Is(err, workspace.ErrDirectoryNotFound):
		return apierrors.Write(c, fiber.StatusBadRequest, "Directory does not exist.", nil)
	case errors.Is(err, project.ErrFilePathRequired):
		return apierrors.Write(c, fiber.StatusBadRequest, "Valid file path is required", nil)
	case errors.Is(err, project.ErrNotAFile), errors.Is(err, project.ErrFileTooLarge):
		return apierrors.Write(c, fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, assistant.ErrEmptyPrompt):
		return apierrors.Write(c, fiber.StatusBadRequest, "Prompt is required", nil)
	}

	return apierrors.Fallback(c, h.logger, err)
}
