// Package seed creates the bootstrap records the application needs on an
// empty database.
package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/repositories"
	"github.com/clubstride/interntrack/internal/pkg/auth"
)

// Bootstrap admin identity. The password is a known default the operator is
// expected to rotate after first login.
const (
	adminName     = "Admin"
	adminEmail    = "admin@clubstride.org"
	adminUsername = "admin123"
	adminPassword = "admin123456"
)

// CreateDefaultData creates the bootstrap admin account if it does not
// exist. Idempotent by email check, so it is safe to run on every start.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", adminEmail).Msg("Bootstrap admin already present")
		return nil
	}

	authHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	username := adminUsername
	admin := &models.User{
		Name:      adminName,
		Email:     adminEmail,
		Username:  &username,
		School:    "N/A",
		Role:      models.RoleAdmin,
		StartDate: time.Now(),
		Status:    models.StatusActive,
		AuthHash:  &authHash,
	}

	id, err := userRepo.CreateActiveUser(ctx, admin)
	if err != nil {
		return err
	}

	lgr.Info().Int64("userId", id).Str("username", adminUsername).Msg("Bootstrap admin created")
	return nil
}
