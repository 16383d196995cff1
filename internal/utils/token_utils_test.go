package utils_test

import (
	"testing"
	"time"

	"github.com/earnbuddy/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSigner(expiry time.Duration) utils.TokenSigner {
	return utils.TokenSigner{Secret: "secret", Issuer: "earnbuddy-backend", Expiry: expiry}
}

func TestTokenSigner_SignAndVerify(t *testing.T) {
	signer := testSigner(time.Hour)

	token, expiresAt, err := signer.Sign("worker@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "worker@example.com", claims.Subject)
	assert.Equal(t, "earnbuddy-backend", claims.Issuer)
}

func TestTokenSigner_WrongSecret(t *testing.T) {
	token, _, err := testSigner(time.Hour).Sign("worker@example.com")
	require.NoError(t, err)

	other := utils.TokenSigner{Secret: "wrong-secret", Issuer: "earnbuddy-backend", Expiry: time.Hour}
	claims, err := other.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenSigner_Expired(t *testing.T) {
	signer := testSigner(-time.Minute)
	token, _, err := signer.Sign("worker@example.com")
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenSigner_Malformed(t *testing.T) {
	claims, err := testSigner(time.Hour).Verify("garbage")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
