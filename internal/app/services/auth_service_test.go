package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
	"github.com/clubstride/interntrack/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeTokenRepo, *auth.LoginLimiter) {
	t.Helper()
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	limiter := auth.NewLoginLimiter(5)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	svc := NewAuthService(userRepo, tokenRepo, jwtService, limiter, zerolog.Nop())
	return svc, userRepo, tokenRepo, limiter
}

func seedActiveUser(t *testing.T, userRepo *fakeUserRepo, username, password string, status models.AccountStatus) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return userRepo.add(&models.User{
		Name:      "Maria Lopez",
		Email:     username + "@example.org",
		Username:  &username,
		School:    "Lincoln High School",
		Role:      models.RoleCoreIntern,
		StartDate: time.Now(),
		Status:    status,
		AuthHash:  &hash,
	})
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo, _, limiter := newAuthFixture(t)
	seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusActive)

	// A prior failure is cleared by the successful login.
	limiter.Fail("maria123")

	resp, err := svc.Login(context.Background(), "maria123", "pass-word-1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token.AccessToken)
	require.NotEmpty(t, resp.Token.RefreshToken)
	require.Equal(t, "maria123", resp.User.Username)
	require.Equal(t, 0, limiter.Attempts("maria123"))
}

func TestLogin_WrongPasswordAndUnknownUserLookTheSame(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)
	seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusActive)

	_, errWrongPassword := svc.Login(context.Background(), "maria123", "nope")
	_, errUnknownUser := svc.Login(context.Background(), "ghost999", "nope")

	require.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownUser, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUserRejected(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)
	seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusInactive)

	_, err := svc.Login(context.Background(), "maria123", "pass-word-1")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_RateLimitedEvenWithCorrectPassword(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)
	seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusActive)

	for i := 0; i < 5; i++ {
		_, err := svc.Login(context.Background(), "maria123", "wrong")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Budget exhausted: correct credentials are refused without a store hit.
	_, err := svc.Login(context.Background(), "maria123", "pass-word-1")
	require.ErrorIs(t, err, apperrors.ErrRateLimited)
}

func TestRefreshToken_RotatesAndRevokesOld(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)
	seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusActive)

	loginResp, err := svc.Login(context.Background(), "maria123", "pass-word-1")
	require.NoError(t, err)
	first := loginResp.Token.RefreshToken

	refreshResp, err := svc.RefreshToken(context.Background(), first)
	require.NoError(t, err)
	require.NotEqual(t, first, refreshResp.Token.RefreshToken)

	// The rotated-out token is single use.
	_, err = svc.RefreshToken(context.Background(), first)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshToken_UnknownAndExpired(t *testing.T) {
	svc, userRepo, tokenRepo, _ := newAuthFixture(t)
	user := seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusActive)

	_, err := svc.RefreshToken(context.Background(), "missing-token")
	require.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	require.NoError(t, tokenRepo.CreateToken(context.Background(), "stale", user.ID, time.Now().Add(-time.Minute)))
	_, err = svc.RefreshToken(context.Background(), "stale")
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRefreshToken_DisabledAccount(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)
	user := seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusActive)

	loginResp, err := svc.Login(context.Background(), "maria123", "pass-word-1")
	require.NoError(t, err)

	require.NoError(t, userRepo.SetStatus(context.Background(), user.ID, models.StatusInactive))

	_, err = svc.RefreshToken(context.Background(), loginResp.Token.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLogout_RevokesTokenAndResetsLimiter(t *testing.T) {
	svc, userRepo, _, limiter := newAuthFixture(t)
	user := seedActiveUser(t, userRepo, "maria123", "pass-word-1", models.StatusActive)

	loginResp, err := svc.Login(context.Background(), "maria123", "pass-word-1")
	require.NoError(t, err)

	limiter.Fail("maria123")
	require.NoError(t, svc.Logout(context.Background(), user.ID, loginResp.Token.RefreshToken))
	require.Equal(t, 0, limiter.Attempts("maria123"))

	_, err = svc.RefreshToken(context.Background(), loginResp.Token.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
