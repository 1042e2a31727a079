package services

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	appauth "github.com/clubstride/interntrack/internal/app/auth"
	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/repositories"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// DeliverableService handles work product submission and review
type DeliverableService struct {
	deliverableRepo repositories.IDeliverableRepository
	logger          zerolog.Logger
}

// NewDeliverableService creates a new DeliverableService
func NewDeliverableService(deliverableRepo repositories.IDeliverableRepository, logger zerolog.Logger) *DeliverableService {
	return &DeliverableService{deliverableRepo: deliverableRepo, logger: logger}
}

// Submit records a new deliverable for the session user with status Pending.
func (s *DeliverableService) Submit(ctx context.Context, session appauth.Session, req *dto.SubmitDeliverableRequest) (*models.Deliverable, error) {
	if err := appauth.Require(session, appauth.ActionSubmitDeliverable, session.UserID); err != nil {
		return nil, err
	}
	if !slices.Contains(models.DeliverableTypes, req.Type) {
		return nil, apperrors.NewValidationError("unknown deliverable type")
	}

	d := &models.Deliverable{
		UserID:      session.UserID,
		Type:        req.Type,
		Description: req.Description,
		Links:       req.Links,
		ProofLinks:  req.ProofLinks,
		Status:      models.DeliverablePending,
	}

	id, err := s.deliverableRepo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id

	s.logger.Debug().Int64("userId", session.UserID).Str("type", req.Type).Msg("Deliverable submitted")
	return d, nil
}

// List returns deliverables scoped by role: admins see everything, others
// see their own submissions.
func (s *DeliverableService) List(ctx context.Context, session appauth.Session) ([]*models.Deliverable, error) {
	if session.Role == models.RoleAdmin {
		return s.deliverableRepo.ListAll(ctx)
	}
	if err := appauth.Require(session, appauth.ActionReadDeliverables, session.UserID); err != nil {
		return nil, err
	}
	return s.deliverableRepo.ListByUser(ctx, session.UserID)
}

// ListPending returns the review queue, oldest submissions first. Admin only.
func (s *DeliverableService) ListPending(ctx context.Context, session appauth.Session) ([]*models.Deliverable, error) {
	if err := appauth.Require(session, appauth.ActionReviewDeliverable, 0); err != nil {
		return nil, err
	}
	return s.deliverableRepo.ListPending(ctx)
}

// Review records a review outcome. The status must leave Pending, and
// reviewed_at is stamped by the store in the same update.
func (s *DeliverableService) Review(ctx context.Context, session appauth.Session, deliverableID int64, status models.DeliverableStatus, comments string) error {
	if err := appauth.Require(session, appauth.ActionReviewDeliverable, 0); err != nil {
		return err
	}
	if !status.Valid() || status == models.DeliverablePending {
		return apperrors.NewValidationError("review status must be Approved, Needs Revision or Rejected")
	}
	if err := s.deliverableRepo.UpdateReview(ctx, deliverableID, status, comments); err != nil {
		return err
	}
	s.logger.Info().Int64("deliverableId", deliverableID).Str("status", string(status)).Msg("Deliverable reviewed")
	return nil
}
