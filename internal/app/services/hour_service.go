package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/clubstride/interntrack/internal/app/auth"
	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/repositories"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
	"github.com/clubstride/interntrack/internal/pkg/helpers"
)

// HourService handles work session logging and approval
type HourService struct {
	hourRepo repositories.IHourRepository
	logger   zerolog.Logger
}

// NewHourService creates a new HourService
func NewHourService(hourRepo repositories.IHourRepository, logger zerolog.Logger) *HourService {
	return &HourService{hourRepo: hourRepo, logger: logger}
}

// Log records a work session for the session user. The duration is derived
// from the start/end pair here and never recomputed; an end at or before the
// start is rejected before anything is stored.
func (s *HourService) Log(ctx context.Context, session appauth.Session, req *dto.LogHoursRequest) (*models.HourEntry, error) {
	if err := appauth.Require(session, appauth.ActionLogHours, session.UserID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}

	totalHours, err := helpers.ClockSpanHours(req.StartTime, req.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	entry := &models.HourEntry{
		UserID:      session.UserID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TotalHours:  totalHours,
		Description: req.Description,
	}

	id, err := s.hourRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	s.logger.Debug().Int64("userId", session.UserID).Float64("hours", totalHours).Msg("Hours logged")
	return entry, nil
}

// List returns hour entries scoped by role: admins see every entry with the
// owning user joined in, others see their own.
func (s *HourService) List(ctx context.Context, session appauth.Session, startDate, endDate *time.Time) ([]*models.HourEntry, error) {
	if session.Role == models.RoleAdmin {
		return s.hourRepo.ListAll(ctx)
	}
	if err := appauth.Require(session, appauth.ActionReadHours, session.UserID); err != nil {
		return nil, err
	}
	return s.hourRepo.ListByUser(ctx, session.UserID, startDate, endDate)
}

// Total reports accumulated hours for a user. Core interns may only ask
// about themselves; leads and admins may ask about anyone.
func (s *HourService) Total(ctx context.Context, session appauth.Session, userID int64, approvedOnly bool) (float64, error) {
	if userID == session.UserID {
		if err := appauth.Require(session, appauth.ActionReadHours, userID); err != nil {
			return 0, err
		}
	} else {
		if err := appauth.Require(session, appauth.ActionReadReports, userID); err != nil {
			return 0, err
		}
	}
	return s.hourRepo.Total(ctx, userID, approvedOnly)
}

// SetApproval toggles the approval flag on an entry. Admin only.
func (s *HourService) SetApproval(ctx context.Context, session appauth.Session, entryID int64, approved bool) error {
	if err := appauth.Require(session, appauth.ActionApproveHours, 0); err != nil {
		return err
	}
	if err := s.hourRepo.SetApproval(ctx, entryID, approved); err != nil {
		return err
	}
	s.logger.Info().Int64("entryId", entryID).Bool("approved", approved).Msg("Hour entry approval changed")
	return nil
}
