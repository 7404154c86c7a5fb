package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sales-tracker/internal/domain"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue(42)
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	for _, bad := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := m.Verify(bad)
		require.ErrorIs(t, err, domain.ErrUnauthorized, "input %q", bad)
	}
}
