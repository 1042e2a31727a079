package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/services"
	"github.com/clubstride/interntrack/internal/middleware"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// AccountController handles admin account lifecycle operations
type AccountController struct {
	accountService *services.AccountService
	logger         zerolog.Logger
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService *services.AccountService, logger zerolog.Logger) *AccountController {
	return &AccountController{accountService: accountService, logger: logger}
}

func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}

// ListPending returns access requests awaiting review.
func (c *AccountController) ListPending(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pending, err := c.accountService.ListPending(ctx.Request.Context(), session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToUserResponses(pending)))
}

// Approve activates a pending request and returns the generated credentials.
func (c *AccountController) Approve(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.accountService.Approve(ctx.Request.Context(), session, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Reject deletes a pending request.
func (c *AccountController) Reject(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.accountService.Reject(ctx.Request.Context(), session, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Account request rejected"})
}

// SetStatus activates or deactivates an account.
func (c *AccountController) SetStatus(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	if err := c.accountService.SetStatus(ctx.Request.Context(), session, userID, models.AccountStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Account status updated"})
}

// ListActive returns the active intern roster.
func (c *AccountController) ListActive(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	interns, err := c.accountService.ListActiveInterns(ctx.Request.Context(), session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToUserResponses(interns)))
}
