package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_sessionToken(t *testing.T) {
	secret := "test-secret"
	userAccountID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := issueSessionToken(secret, userAccountID, "ann@example.com")
		require.NoError(t, err)

		claims, err := parseSessionToken(secret, token)
		require.NoError(t, err)
		require.Equal(t, userAccountID.String(), claims.UserAccountID)
		require.Equal(t, "ann@example.com", claims.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := issueSessionToken(secret, userAccountID, "ann@example.com")
		require.NoError(t, err)

		_, err = parseSessionToken("other-secret", token)
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := parseSessionToken(secret, "not.a.jwt")
		require.Error(t, err)
	})
}
