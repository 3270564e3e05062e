package repos

import (
	"errors"

	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/SakethSripada/DesktopDev/internal/project"
	"github.com/SakethSripada/DesktopDev/internal/repos"
	"github.com/SakethSripada/DesktopDev/internal/server/apierrors"
	"github.com/SakethSripada/DesktopDev/internal/server/validation"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	reposSvc   *repos.Service
	projectSvc *project.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	reposSvc *repos.Service,
	projectSvc *project.Service,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		reposSvc:   reposSvc,
		projectSvc: projectSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	h.post(r, "/connect-repo", "Failed to clone repository.", validation.DecorateWithBodyEx(h.validator, h.connect))
	h.post(r, "/connect-existing-repo", "Failed to connect to repository.", validation.DecorateWithBodyEx(h.validator, h.connectExisting))
	h.post(r, "/get-status", "Failed to get repository status.", validation.DecorateWithBodyEx(h.validator, h.status))
	h.post(r, "/list-branches", "Failed to list branches.", validation.DecorateWithBodyEx(h.validator, h.listBranches))
	h.post(r, "/checkout", "Failed to checkout branch.", validation.DecorateWithBodyEx(h.validator, h.checkout))
	h.post(r, "/stage-files", "Failed to stage files.", validation.DecorateWithBodyEx(h.validator, h.stage))
	h.post(r, "/commit", "Failed to commit files.", validation.DecorateWithBodyEx(h.validator, h.commit))
	h.post(r, "/push", "Failed to push to branch.", validation.DecorateWithBodyEx(h.validator, h.push))
	h.post(r, "/pull", "Failed to pull from branch.", validation.DecorateWithBodyEx(h.validator, h.pull))
	h.post(r, "/stash", "Failed to stash changes.", validation.DecorateWithBodyEx(h.validator, h.stash))
	h.post(r, "/list-files", "Failed to list files.", validation.DecorateWithBodyEx(h.validator, h.listFiles))
}

// post registers a root level route. The routes share the root router with
// other handlers, so errorsHandler is attached per route.
func (h *Handler) post(r fiber.Router, path, failure string, next fiber.Handler) {
	r.Post(path, h.errorsHandler, apierrors.WithFailure(failure, next))
}

//	@Summary		Clone a repository
//	@Description	Clone a remote repository into an empty or missing local directory
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ConnectRequest	true	"Clone request"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/connect-repo [post]
//
// Clone a repository.
func (h *Handler) connect(c *fiber.Ctx, req *ConnectRequest) error {
	_, err := h.reposSvc.Connect(c.Context(), repos.ConnectRequest{
		URL:         req.RepoURL,
		Path:        req.LocalPath,
		Credentials: req.credentials.toDomain(),
	})
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Repository cloned successfully."})
}

//	@Summary		Connect to an existing repository
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PathRequest	true	"Workspace"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	apierrors.Response
//	@Router			/connect-existing-repo [post]
func (h *Handler) connectExisting(c *fiber.Ctx, req *PathRequest) error {
	if _, err := h.reposSvc.ConnectExisting(c.Context(), req.LocalPath); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Connected to existing repository."})
}

//	@Summary		Get working tree status
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PathRequest	true	"Workspace"
//	@Success		200		{object}	StatusResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/get-status [post]
func (h *Handler) status(c *fiber.Ctx, req *PathRequest) error {
	changes, err := h.reposSvc.Status(c.Context(), req.LocalPath)
	if err != nil {
		return err
	}

	return c.JSON(StatusResponse{ChangedFiles: newChangedFiles(changes)})
}

//	@Summary		List local branches
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PathRequest	true	"Workspace"
//	@Success		200		{object}	BranchesResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/list-branches [post]
func (h *Handler) listBranches(c *fiber.Ctx, req *PathRequest) error {
	list, err := h.reposSvc.ListBranches(c.Context(), req.LocalPath)
	if err != nil {
		return err
	}

	return c.JSON(BranchesResponse{Branches: list.Names(), CurrentBranch: list.Current})
}

//	@Summary		Checkout a branch
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckoutRequest	true	"Checkout request"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/checkout [post]
func (h *Handler) checkout(c *fiber.Ctx, req *CheckoutRequest) error {
	err := h.reposSvc.Checkout(c.Context(), req.LocalPath, git.CheckoutRequest{
		Branch: req.BranchName,
		Create: req.Create,
	})
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Switched to branch " + req.BranchName + "."})
}

//	@Summary		Stage files
//	@Description	Add files to the index; filesToCommit is a comma separated list
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		StageRequest	true	"Stage request"
//	@Success		200		{object}	MessageResponse{details=StatusResponse}
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/stage-files [post]
func (h *Handler) stage(c *fiber.Ctx, req *StageRequest) error {
	changes, err := h.reposSvc.Stage(c.Context(), req.LocalPath, req.paths())
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{
		Message: "Files staged successfully.",
		Details: StatusResponse{ChangedFiles: newChangedFiles(changes)},
	})
}

//	@Summary		Commit files
//	@Description	Commit the requested files. Unstaged files are reported in unstagedFiles
//	@Description	unless autoStage is set, in which case they are staged first.
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CommitRequest	true	"Commit request"
//	@Success		200		{object}	MessageResponse{details=CommitDetails}
//	@Failure		400		{object}	UnstagedResponse
//	@Failure		500		{object}	apierrors.Response
//	@Router			/commit [post]
func (h *Handler) commit(c *fiber.Ctx, req *CommitRequest) error {
	result, err := h.reposSvc.Commit(c.Context(), repos.CommitRequest{
		Path:         req.LocalPath,
		Message:      req.CommitMessage,
		TargetBranch: req.BranchName,
		Files:        req.paths(),
		AutoStage:    req.AutoStage,
	})
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Commit successful.", Details: newCommitDetails(result)})
}

//	@Summary		Push a branch
//	@Description	Push to remoteUrl, or to origin when empty. Credentials are used for this call only.
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RemoteRequest	true	"Push request"
//	@Success		200		{object}	MessageResponse{details=PushDetails}
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/push [post]
func (h *Handler) push(c *fiber.Ctx, req *RemoteRequest) error {
	result, err := h.reposSvc.Push(c.Context(), req.LocalPath, req.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{
		Message: "Push successful.",
		Details: PushDetails{Remote: result.Remote, Branch: result.Branch, UpToDate: result.UpToDate},
	})
}

//	@Summary		Pull a branch
//	@Description	Fast-forward the workspace from remoteUrl, or from origin when empty
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RemoteRequest	true	"Pull request"
//	@Success		200		{object}	MessageResponse{details=PullDetails}
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/pull [post]
func (h *Handler) pull(c *fiber.Ctx, req *RemoteRequest) error {
	result, err := h.reposSvc.Pull(c.Context(), req.LocalPath, req.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{
		Message: "Pull successful.",
		Details: PullDetails{
			Remote:      result.Remote,
			Branch:      result.Branch,
			UpToDate:    result.UpToDate,
			FastForward: result.FastForward,
			From:        result.From,
			To:          result.To,
		},
	})
}

//	@Summary		Stash changes
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		StashRequest	true	"Stash request"
//	@Success		200		{object}	MessageResponse{details=string}
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/stash [post]
func (h *Handler) stash(c *fiber.Ctx, req *StashRequest) error {
	output, err := h.reposSvc.Stash(c.Context(), req.LocalPath, req.StashMessage)
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Stash successful.", Details: output})
}

//	@Summary		List workspace files
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PathRequest	true	"Workspace"
//	@Success		200		{object}	FilesResponse
//	@Failure		400		{object}	apierrors.Response
//	@Failure		500		{object}	apierrors.Response
//	@Router			/list-files [post]
func (h *Handler) listFiles(c *fiber.Ctx, req *PathRequest) error {
	files, err := h.projectSvc.ListFiles(c.Context(), req.LocalPath)
	if err != nil {
		return err
	}

	return c.JSON(FilesResponse{Files: files})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if validation.IsRequestError(err) {
		return err //nolint:wrapcheck //handled by the validation middleware and app error handler
	}

	var notStaged *repos.FilesNotStagedError
	if errors.As(err, &notStaged) {
		return c.Status(fiber.StatusBadRequest).JSON(UnstagedResponse{
			Error:         "One or more files are not staged.",
			UnstagedFiles: notStaged.Files,
		})
	}

	switch {
	case errors.Is(err, workspace.ErrDestinationNotEmpty):
		return apierrors.Write(c, fiber.StatusBadRequest, "Destination path is not empty.", nil)
	case errors.Is(err, workspace.ErrDirectoryNotFound):
		return apierrors.Write(c, fiber.StatusBadRequest, "Directory does not exist.", nil)
	case errors.Is(err, workspace.ErrNotAGitRepository):
		return apierrors.Write(c, fiber.StatusBadRequest, "Directory is not a Git repository.", nil)
	case errors.Is(err, workspace.ErrPathRequired):
		return apierrors.Write(c, fiber.StatusBadRequest, "Local path is required.", nil)
	case errors.Is(err, workspace.ErrDirectoryCreateFailed):
		return apierrors.Write(c, fiber.StatusInternalServerError, "Failed to create directory.", err.Error())
	case errors.Is(err, repos.ErrNoFilesSpecified):
		return apierrors.Write(c, fiber.StatusBadRequest, "No files specified to commit.", nil)
	case errors.Is(err, repos.ErrNoFilesToStage):
		return apierrors.Write(c, fiber.StatusBadRequest, "No files specified to stage.", nil)
	case errors.Is(err, repos.ErrNothingStaged):
		return apierrors.Write(c, fiber.StatusBadRequest, "No files staged for commit.", nil)
	case errors.Is(err, repos.ErrCommitMessageRequired):
		return apierrors.Write(c, fiber.StatusBadRequest, "Commit message is required.", nil)
	case errors.Is(err, git.ErrRemoteURLRequired):
		return apierrors.Write(c, fiber.StatusBadRequest, "Remote URL is required.", nil)
	}

	return apierrors.Fallback(c, h.logger, err)
}
