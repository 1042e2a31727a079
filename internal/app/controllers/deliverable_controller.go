package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/services"
	"github.com/clubstride/interntrack/internal/middleware"
)

// DeliverableController handles deliverable endpoints
type DeliverableController struct {
	deliverableService *services.DeliverableService
	logger             zerolog.Logger
}

// NewDeliverableController creates a new DeliverableController
func NewDeliverableController(deliverableService *services.DeliverableService, logger zerolog.Logger) *DeliverableController {
	return &DeliverableController{deliverableService: deliverableService, logger: logger}
}

// Submit records a new deliverable for the authenticated user.
func (c *DeliverableController) Submit(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SubmitDeliverableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	d, err := c.deliverableService.Submit(ctx.Request.Context(), session, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, d)
}

// List returns deliverables scoped by role. Admins may pass ?status=pending
// for the review queue ordered oldest first.
func (c *DeliverableController) List(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var (
		deliverables []*models.Deliverable
	)
	if ctx.Query("status") == "pending" {
		deliverables, err = c.deliverableService.ListPending(ctx.Request.Context(), session)
	} else {
		deliverables, err = c.deliverableService.List(ctx.Request.Context(), session)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(deliverables))
}

// Review records a review outcome for a submission.
func (c *DeliverableController) Review(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	deliverableID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.ReviewDeliverableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	err = c.deliverableService.Review(ctx.Request.Context(), session, deliverableID,
		models.DeliverableStatus(req.Status), req.AdminComments)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Deliverable reviewed"})
}
