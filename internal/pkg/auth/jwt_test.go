package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubstride/interntrack/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func activeUser() *models.User {
	username := "maria123"
	return &models.User{
		ID:       42,
		Name:     "Maria Lopez",
		Username: &username,
		Role:     models.RoleCoreIntern,
		Status:   models.StatusActive,
	}
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	svc := testJWTService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(activeUser())
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	require.Equal(t, int(time.Hour.Seconds()), expiresIn)
	require.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "maria123", claims.Username)
	require.Equal(t, string(models.RoleCoreIntern), claims.Role)
}

func TestGenerateTokenPair_RequiresUsername(t *testing.T) {
	svc := testJWTService(time.Hour)

	user := activeUser()
	user.Username = nil
	_, _, _, _, err := svc.GenerateTokenPair(user)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testJWTService(time.Hour)
	accessToken, _, _, _, err := svc.GenerateTokenPair(activeUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour})
	_, err = other.ValidateToken(accessToken)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	accessToken, _, _, _, err := svc.GenerateTokenPair(activeUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidateAndExtractClaims_EmptyToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)
}
