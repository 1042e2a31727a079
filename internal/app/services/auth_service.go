package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/repositories"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
	"github.com/clubstride/interntrack/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repositories.IUserRepository
	tokenRepo  repositories.ITokenRepository
	jwtService *auth.JWTService
	limiter    *auth.LoginLimiter
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	limiter *auth.LoginLimiter,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		limiter:    limiter,
		logger:     logger,
	}
}

// Login authenticates a username/password pair and issues a token pair.
// The limiter is consulted before the store: once an identity has exceeded
// the failure budget, even correct credentials are refused until reset.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	if s.limiter.Exceeded(username) {
		s.logger.Warn().Str("username", username).Msg("Login refused, attempt limit reached")
		return nil, apperrors.ErrRateLimited
	}

	user, err := s.userRepo.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.limiter.Fail(username)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error during login: %w", err)
	}

	if user.AuthHash == nil || !auth.CheckPassword(*user.AuthHash, password) {
		s.limiter.Fail(username)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.limiter.Reset(username)
	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. Expired and revoked tokens are rejected.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	userID, expiryDate, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if time.Now().After(expiryDate) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != models.StatusActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error rotating refresh token: %w", err)
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token and clears the limiter state
// for the user's login identity.
func (s *AuthService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) || errors.Is(err, apperrors.ErrTokenRevoked) {
			return err
		}
		return fmt.Errorf("error during logout: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil && user.Username != nil {
		s.limiter.Reset(*user.Username)
	}
	return nil
}

// GetProfile returns the current user's account record.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	s.logger.Debug().Int64("userId", user.ID).Msg("Issued token pair")
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             int64(expiresIn),
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: int64(refreshExpiresIn),
		},
		User: dto.ToUserResponse(user),
	}, nil
}
