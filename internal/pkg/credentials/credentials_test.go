package credentials

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestGenerateUsername_Format(t *testing.T) {
	username, err := GenerateUsername("Maria Lopez-Garcia")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(username, "marialopezgarcia"))
	require.Len(t, username, len("marialopezgarcia")+3)

	suffix := username[len(username)-3:]
	for _, r := range suffix {
		require.True(t, unicode.IsDigit(r), "suffix %q must be digits", suffix)
	}
}

func TestGenerateUsername_StripsNonAlphanumerics(t *testing.T) {
	username, err := GenerateUsername("  J.R. O'Neill 3rd ")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(username, "jroneill3rd"))
}

func TestGenerateUsername_EmptyNameStillProducesDigits(t *testing.T) {
	username, err := GenerateUsername("!!!")
	require.NoError(t, err)
	require.Len(t, username, 3)
}

func TestGeneratePassword_LengthAndAlphabet(t *testing.T) {
	password, err := GeneratePassword(DefaultPasswordLength)
	require.NoError(t, err)
	require.Len(t, password, DefaultPasswordLength)

	for _, r := range password {
		require.True(t, strings.ContainsRune(passwordAlphabet, r),
			"character %q outside allowed alphabet", r)
	}
}

func TestGeneratePassword_DefaultsOnBadLength(t *testing.T) {
	password, err := GeneratePassword(0)
	require.NoError(t, err)
	require.Len(t, password, DefaultPasswordLength)
}

func TestGeneratePassword_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		password, err := GeneratePassword(DefaultPasswordLength)
		require.NoError(t, err)
		seen[password] = true
	}
	require.Greater(t, len(seen), 1, "passwords must not be constant")
}
