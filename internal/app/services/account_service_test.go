package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	appauth "github.com/clubstride/interntrack/internal/app/auth"
	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
	"github.com/clubstride/interntrack/internal/pkg/auth"
)

var (
	adminSession = appauth.Session{UserID: 1, Role: models.RoleAdmin}
	coreSession  = appauth.Session{UserID: 2, Role: models.RoleCoreIntern}
)

func requestFixture() *dto.RequestAccountRequest {
	return &dto.RequestAccountRequest{
		Name:      "Maria Lopez",
		Email:     "maria@example.org",
		School:    "Lincoln High School",
		Role:      string(models.RoleCoreIntern),
		StartDate: "2026-09-01",
	}
}

func TestRequestAccount_CreatesPendingWithoutCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	user, err := svc.RequestAccount(context.Background(), requestFixture())
	require.NoError(t, err)
	require.Equal(t, models.StatusPendingApproval, user.Status)
	require.Nil(t, user.Username)
	require.Nil(t, user.AuthHash)
}

func TestRequestAccount_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	_, err := svc.RequestAccount(context.Background(), requestFixture())
	require.NoError(t, err)

	_, err = svc.RequestAccount(context.Background(), requestFixture())
	require.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestRequestAccount_RejectsAdminRole(t *testing.T) {
	svc := NewAccountService(newFakeUserRepo(), zerolog.Nop())

	req := requestFixture()
	req.Role = string(models.RoleAdmin)
	_, err := svc.RequestAccount(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApprove_GeneratesWorkingCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	user, err := svc.RequestAccount(context.Background(), requestFixture())
	require.NoError(t, err)

	resp, err := svc.Approve(context.Background(), adminSession, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Username)
	require.Len(t, resp.Password, 12)

	// The stored account is active and the issued password verifies against
	// the stored hash.
	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, stored.Status)
	require.NotNil(t, stored.AuthHash)
	require.True(t, auth.CheckPassword(*stored.AuthHash, resp.Password))

	// Pending queue is now empty.
	pending, err := svc.ListPending(context.Background(), adminSession)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestApprove_RequiresAdmin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	user, err := svc.RequestAccount(context.Background(), requestFixture())
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), coreSession, user.ID)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestApprove_NonPendingAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	user, err := svc.RequestAccount(context.Background(), requestFixture())
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), adminSession, user.ID)
	require.NoError(t, err)

	// Second approval of the same account fails; it is no longer pending.
	_, err = svc.Approve(context.Background(), adminSession, user.ID)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestReject_DeletesOnlyPending(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	user, err := svc.RequestAccount(context.Background(), requestFixture())
	require.NoError(t, err)

	require.NoError(t, svc.Reject(context.Background(), adminSession, user.ID))

	_, err = userRepo.GetByID(context.Background(), user.ID)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// Rejecting an active account reports not found rather than deleting.
	active := userRepo.add(&models.User{
		Name: "Sam Doe", Email: "sam@example.org",
		Role: models.RoleCoreIntern, Status: models.StatusActive,
		StartDate: time.Now(),
	})
	err = svc.Reject(context.Background(), adminSession, active.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetStatus_Deactivation(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	active := userRepo.add(&models.User{
		Name: "Sam Doe", Email: "sam@example.org",
		Role: models.RoleCoreIntern, Status: models.StatusActive,
		StartDate: time.Now(),
	})

	require.NoError(t, svc.SetStatus(context.Background(), adminSession, active.ID, models.StatusInactive))

	stored, err := userRepo.GetByID(context.Background(), active.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusInactive, stored.Status)

	// Pending Approval is not a settable status here.
	err = svc.SetStatus(context.Background(), adminSession, active.ID, models.StatusPendingApproval)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.SetStatus(context.Background(), adminSession, 999, models.StatusActive)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListActiveInterns_ExcludesAdminsAndInactive(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAccountService(userRepo, zerolog.Nop())

	userRepo.add(&models.User{Name: "Admin", Email: "a@x.org", Role: models.RoleAdmin, Status: models.StatusActive})
	userRepo.add(&models.User{Name: "Core", Email: "c@x.org", Role: models.RoleCoreIntern, Status: models.StatusActive})
	userRepo.add(&models.User{Name: "Gone", Email: "g@x.org", Role: models.RoleCoreIntern, Status: models.StatusInactive})

	interns, err := svc.ListActiveInterns(context.Background(), adminSession)
	require.NoError(t, err)
	require.Len(t, interns, 1)
	require.Equal(t, "Core", interns[0].Name)
}
