package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/voluntai/voluntai-api/internal/models"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 7*24*time.Hour)

	user := &models.User{ID: 7, Email: "onga@example.com", Kind: models.KindOrganization}
	token, err := issuer.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), claims.UserID)
	require.Equal(t, "onga@example.com", claims.Email)
	require.Equal(t, models.KindOrganization, claims.Kind)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Generate(&models.User{ID: 1, Email: "v1@example.com", Kind: models.KindIndividual})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	forger := NewTokenIssuer("wrong-secret", time.Hour)

	token, err := forger.Generate(&models.User{ID: 1, Email: "v1@example.com", Kind: models.KindIndividual})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, tokenString := range []string{"", "abc", "a.b.c"} {
		_, err := issuer.Verify(tokenString)
		require.Error(t, err, "token %q", tokenString)
	}
}
