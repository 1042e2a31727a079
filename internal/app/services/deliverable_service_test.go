package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

func submitRequest() *dto.SubmitDeliverableRequest {
	return &dto.SubmitDeliverableRequest{
		Type:        "Reel",
		Description: "Recruitment reel for fall cohort",
		Links:       "https://example.org/reel",
	}
}

func TestSubmit_CreatesPending(t *testing.T) {
	repo := newFakeDeliverableRepo()
	svc := NewDeliverableService(repo, zerolog.Nop())

	d, err := svc.Submit(context.Background(), coreSession, submitRequest())
	require.NoError(t, err)
	require.Equal(t, models.DeliverablePending, d.Status)
	require.Nil(t, d.ReviewedAt)
	require.Equal(t, coreSession.UserID, d.UserID)
}

func TestSubmit_UnknownType(t *testing.T) {
	svc := NewDeliverableService(newFakeDeliverableRepo(), zerolog.Nop())

	req := submitRequest()
	req.Type = "Interpretive Dance"
	_, err := svc.Submit(context.Background(), coreSession, req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestReview_SetsStatusAndReviewedAt(t *testing.T) {
	repo := newFakeDeliverableRepo()
	svc := NewDeliverableService(repo, zerolog.Nop())

	d, err := svc.Submit(context.Background(), coreSession, submitRequest())
	require.NoError(t, err)

	err = svc.Review(context.Background(), adminSession, d.ID, models.DeliverableNeedsRevision, "Add captions")
	require.NoError(t, err)

	stored := repo.deliverables[d.ID]
	require.Equal(t, models.DeliverableNeedsRevision, stored.Status)
	require.Equal(t, "Add captions", stored.AdminComments)
	require.NotNil(t, stored.ReviewedAt)
}

func TestReview_RejectsPendingAsOutcome(t *testing.T) {
	repo := newFakeDeliverableRepo()
	svc := NewDeliverableService(repo, zerolog.Nop())

	d, err := svc.Submit(context.Background(), coreSession, submitRequest())
	require.NoError(t, err)

	err = svc.Review(context.Background(), adminSession, d.ID, models.DeliverablePending, "")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Review(context.Background(), coreSession, d.ID, models.DeliverableApproved, "")
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestListPending_AdminOnly(t *testing.T) {
	repo := newFakeDeliverableRepo()
	svc := NewDeliverableService(repo, zerolog.Nop())

	d, err := svc.Submit(context.Background(), coreSession, submitRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Review(context.Background(), adminSession, d.ID, models.DeliverableApproved, ""))
	_, err = svc.Submit(context.Background(), coreSession, submitRequest())
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background(), adminSession)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = svc.ListPending(context.Background(), coreSession)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
