//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/clubstride/interntrack/internal/app/migrations"
	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// These tests need a real postgres. Point DATABASE_URL at a disposable
// database and run with -tags integration.

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx))

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))

	_, err = pool.Exec(ctx, `TRUNCATE wins, support_plans, core_reviews, deliverables, hours, refresh_tokens, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func pendingUser(email string) *models.User {
	return &models.User{
		Name:      "Maria Lopez",
		Email:     email,
		School:    "Lincoln High School",
		Role:      models.RoleCoreIntern,
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:    models.StatusPendingApproval,
	}
}

func TestUserLifecycle(t *testing.T) {
	pool := setupPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	id, err := repo.CreateRequest(ctx, pendingUser("maria@example.org"))
	require.NoError(t, err)

	// Duplicate email is refused by the unique constraint.
	_, err = repo.CreateRequest(ctx, pendingUser("maria@example.org"))
	require.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	pending, err := repo.GetPendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, repo.Approve(ctx, id, "maria123", "hash-value"))

	user, err := repo.GetActiveByUsername(ctx, "maria123")
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, user.Status)
	require.NotNil(t, user.AuthHash)

	// Approving again fails; the row is no longer pending.
	require.ErrorIs(t, repo.Approve(ctx, id, "maria456", "hash-value"), apperrors.ErrNotFound)

	// Username collisions surface as ErrDuplicateUsername.
	otherID, err := repo.CreateRequest(ctx, pendingUser("other@example.org"))
	require.NoError(t, err)
	require.ErrorIs(t, repo.Approve(ctx, otherID, "maria123", "hash-value"), apperrors.ErrDuplicateUsername)

	// Deactivation hides the user from GetActiveByUsername.
	require.NoError(t, repo.SetStatus(ctx, id, models.StatusInactive))
	_, err = repo.GetActiveByUsername(ctx, "maria123")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// Reject deletes pending rows only.
	require.NoError(t, repo.Reject(ctx, otherID))
	require.ErrorIs(t, repo.Reject(ctx, id), apperrors.ErrNotFound)
}

func TestTokenLifecycle(t *testing.T) {
	pool := setupPool(t)
	userRepo := NewUserRepository(pool)
	tokenRepo := NewTokenRepository(pool)
	ctx := context.Background()

	userID, err := userRepo.CreateRequest(ctx, pendingUser("maria@example.org"))
	require.NoError(t, err)

	expiry := time.Now().Add(time.Hour)
	require.NoError(t, tokenRepo.CreateToken(ctx, "refresh-1", userID, expiry))

	gotID, gotExpiry, err := tokenRepo.GetTokenByValue(ctx, "refresh-1")
	require.NoError(t, err)
	require.Equal(t, userID, gotID)
	require.WithinDuration(t, expiry, gotExpiry, time.Second)

	require.NoError(t, tokenRepo.RevokeToken(ctx, "refresh-1"))
	_, _, err = tokenRepo.GetTokenByValue(ctx, "refresh-1")
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, _, err = tokenRepo.GetTokenByValue(ctx, "missing")
	require.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestHourTotals(t *testing.T) {
	pool := setupPool(t)
	userRepo := NewUserRepository(pool)
	hourRepo := NewHourRepository(pool)
	ctx := context.Background()

	userID, err := userRepo.CreateRequest(ctx, pendingUser("maria@example.org"))
	require.NoError(t, err)

	first, err := hourRepo.Create(ctx, &models.HourEntry{
		UserID: userID, Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00", EndTime: "11:00", TotalHours: 2, Description: "Shift",
	})
	require.NoError(t, err)
	_, err = hourRepo.Create(ctx, &models.HourEntry{
		UserID: userID, Date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "13:00", EndTime: "14:30", TotalHours: 1.5, Description: "Shift",
	})
	require.NoError(t, err)

	require.NoError(t, hourRepo.SetApproval(ctx, first, true))

	total, err := hourRepo.Total(ctx, userID, false)
	require.NoError(t, err)
	require.InDelta(t, 3.5, total, 1e-9)

	approved, err := hourRepo.Total(ctx, userID, true)
	require.NoError(t, err)
	require.InDelta(t, 2.0, approved, 1e-9)

	// Empty range sums to zero, not NULL.
	empty, err := hourRepo.Total(ctx, 99999, false)
	require.NoError(t, err)
	require.Zero(t, empty)

	entries, err := hourRepo.ListByUser(ctx, userID, nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest date first.
	require.True(t, entries[0].Date.After(entries[1].Date))
}

func TestDeliverableReviewStampsReviewedAt(t *testing.T) {
	pool := setupPool(t)
	userRepo := NewUserRepository(pool)
	delRepo := NewDeliverableRepository(pool)
	ctx := context.Background()

	userID, err := userRepo.CreateRequest(ctx, pendingUser("maria@example.org"))
	require.NoError(t, err)

	id, err := delRepo.Create(ctx, &models.Deliverable{
		UserID: userID, Type: "Reel", Description: "Fall recruitment reel",
	})
	require.NoError(t, err)

	pending, err := delRepo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Nil(t, pending[0].ReviewedAt)
	require.Equal(t, "Maria Lopez", pending[0].UserName)

	require.NoError(t, delRepo.UpdateReview(ctx, id, models.DeliverableApproved, "Nice work"))

	all, err := delRepo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, models.DeliverableApproved, all[0].Status)
	require.NotNil(t, all[0].ReviewedAt)

	require.ErrorIs(t, delRepo.UpdateReview(ctx, 99999, models.DeliverableApproved, ""), apperrors.ErrNotFound)
}
