package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndVerify(t *testing.T) {
	token, err := GenerateAccessToken("a@x.com", testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	token, err := GenerateAccessToken("a@x.com", testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[2] = "AAAA" + parts[2][4:]

	_, err = VerifyToken(strings.Join(parts, "."), testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("a@x.com", testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token, "some-other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := GenerateAccessToken("a@x.com", testSecret, "HS256", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestGenerateRejectsNonHMACAlgorithm(t *testing.T) {
	_, err := GenerateAccessToken("a@x.com", testSecret, "RS256", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateSupportsHMACFamily(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		token, err := GenerateAccessToken("a@x.com", testSecret, alg, time.Hour)
		require.NoError(t, err, alg)

		claims, err := VerifyToken(token, testSecret)
		require.NoError(t, err, alg)
		assert.Equal(t, "a@x.com", claims.Subject)
	}
}
