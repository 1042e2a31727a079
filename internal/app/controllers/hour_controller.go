package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/services"
	"github.com/clubstride/interntrack/internal/middleware"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// HourController handles work session endpoints
type HourController struct {
	hourService *services.HourService
	logger      zerolog.Logger
}

// NewHourController creates a new HourController
func NewHourController(hourService *services.HourService, logger zerolog.Logger) *HourController {
	return &HourController{hourService: hourService, logger: logger}
}

// Log records a work session for the authenticated user.
func (c *HourController) Log(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.LogHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	entry, err := c.hourService.Log(ctx.Request.Context(), session, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.LogHoursResponse{ID: entry.ID, TotalHours: entry.TotalHours})
}

// List returns hour entries, optionally filtered by date range.
func (c *HourController) List(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var query dto.HourFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	var startDate, endDate *time.Time
	if query.StartDate != "" {
		t, _ := time.Parse("2006-01-02", query.StartDate)
		startDate = &t
	}
	if query.EndDate != "" {
		t, _ := time.Parse("2006-01-02", query.EndDate)
		endDate = &t
	}

	entries, err := c.hourService.List(ctx.Request.Context(), session, startDate, endDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(entries))
}

// Total reports accumulated hours, for the session user by default or for
// ?userId= when the caller may read reports.
func (c *HourController) Total(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID := session.UserID
	if raw := ctx.Query("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid userId parameter"))
			return
		}
		userID = parsed
	}
	approvedOnly := ctx.Query("approvedOnly") == "true"

	total, err := c.hourService.Total(ctx.Request.Context(), session, userID, approvedOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalHoursResponse{
		UserID:       userID,
		TotalHours:   total,
		ApprovedOnly: approvedOnly,
	})
}

// SetApproval toggles the approval flag on an entry.
func (c *HourController) SetApproval(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entryID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.ApproveHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	if err := c.hourService.SetApproval(ctx.Request.Context(), session, entryID, *req.Approved); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Hour entry approval updated"})
}
