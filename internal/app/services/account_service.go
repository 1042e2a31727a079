package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/clubstride/interntrack/internal/app/auth"
	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/repositories"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
	"github.com/clubstride/interntrack/internal/pkg/auth"
	"github.com/clubstride/interntrack/internal/pkg/credentials"
)

// usernameRetryLimit bounds the regenerate-and-retry loop on username
// collisions. Three random digits give 1000 candidates per name, so more
// than a few collisions in a row means something else is wrong.
const usernameRetryLimit = 5

// AccountService handles the account request/approval lifecycle
type AccountService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(userRepo repositories.IUserRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{userRepo: userRepo, logger: logger}
}

// RequestAccount records a self-service access request as a Pending Approval
// row without credentials. The request is public and needs no session.
func (s *AccountService) RequestAccount(ctx context.Context, req *dto.RequestAccountRequest) (*models.User, error) {
	role := models.Role(req.Role)
	if !role.Valid() || role == models.RoleAdmin {
		return nil, apperrors.NewValidationError("role must be Core Intern or Lead Intern")
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start date must be YYYY-MM-DD")
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		School:    req.School,
		Role:      role,
		StartDate: startDate,
		Status:    models.StatusPendingApproval,
	}

	id, err := s.userRepo.CreateRequest(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userId", id).Str("email", req.Email).Msg("Account requested")
	return user, nil
}

// ListPending returns access requests awaiting review. Admin only.
func (s *AccountService) ListPending(ctx context.Context, session appauth.Session) ([]*models.User, error) {
	if err := appauth.Require(session, appauth.ActionManageAccounts, 0); err != nil {
		return nil, err
	}
	return s.userRepo.GetPendingRequests(ctx)
}

// Approve activates a pending request, generating a username from the
// requester's name and a random password. On a username collision a fresh
// candidate is drawn and the update retried. The plaintext password is
// returned to the approving admin exactly once; only its hash is stored.
func (s *AccountService) Approve(ctx context.Context, session appauth.Session, userID int64) (*dto.ApproveAccountResponse, error) {
	if err := appauth.Require(session, appauth.ActionManageAccounts, 0); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != models.StatusPendingApproval {
		return nil, apperrors.NewValidationError("account is not pending approval")
	}

	password, err := credentials.GeneratePassword(credentials.DefaultPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("error generating password: %w", err)
	}
	authHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var username string
	for attempt := 0; ; attempt++ {
		username, err = credentials.GenerateUsername(user.Name)
		if err != nil {
			return nil, fmt.Errorf("error generating username: %w", err)
		}

		err = s.userRepo.Approve(ctx, userID, username, authHash)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrDuplicateUsername) && attempt < usernameRetryLimit {
			continue
		}
		return nil, err
	}

	user.Username = &username
	user.Status = models.StatusActive

	s.logger.Info().Int64("userId", userID).Str("username", username).Msg("Account approved")
	return &dto.ApproveAccountResponse{
		User:     dto.ToUserResponse(user),
		Username: username,
		Password: password,
	}, nil
}

// Reject deletes a pending request outright. Only pending rows can be
// rejected; anything else reports not found.
func (s *AccountService) Reject(ctx context.Context, session appauth.Session, userID int64) error {
	if err := appauth.Require(session, appauth.ActionManageAccounts, 0); err != nil {
		return err
	}
	if err := s.userRepo.Reject(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Msg("Account request rejected")
	return nil
}

// SetStatus flips an account between Active and Inactive. Deactivation does
// not touch the user's history; it only blocks future logins.
func (s *AccountService) SetStatus(ctx context.Context, session appauth.Session, userID int64, status models.AccountStatus) error {
	if err := appauth.Require(session, appauth.ActionManageAccounts, 0); err != nil {
		return err
	}
	if status != models.StatusActive && status != models.StatusInactive {
		return apperrors.NewValidationError("status must be Active or Inactive")
	}
	if err := s.userRepo.SetStatus(ctx, userID, status); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Str("status", string(status)).Msg("Account status changed")
	return nil
}

// ListActiveInterns returns the active non-admin roster. Admin only.
func (s *AccountService) ListActiveInterns(ctx context.Context, session appauth.Session) ([]*models.User, error) {
	if err := appauth.Require(session, appauth.ActionManageAccounts, 0); err != nil {
		return nil, err
	}
	return s.userRepo.GetActiveInterns(ctx)
}
