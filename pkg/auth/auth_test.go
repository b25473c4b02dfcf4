package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACKeyRoundTrip(t *testing.T) {
	t.Setenv("API_MASTER_SECRET", "test-secret")

	key := GenerateHMACKey("acme-pos")
	require.True(t, strings.HasPrefix(key, "acme-pos."))

	clientID, err := VerifyHMACKey(key)
	require.NoError(t, err)
	assert.Equal(t, "acme-pos", clientID)
}

func TestVerifyHMACKeyRejectsTampering(t *testing.T) {
	t.Setenv("API_MASTER_SECRET", "test-secret")

	key := GenerateHMACKey("acme-pos")
	parts := strings.SplitN(key, ".", 2)

	// Someone else's client ID with a stolen signature.
	_, err := VerifyHMACKey("other-client." + parts[1])
	require.Error(t, err)

	_, err = VerifyHMACKey("not-a-key")
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
}
