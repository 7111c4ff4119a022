package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(TokenSize128)
	require.NoError(t, err)
	require.Len(t, token, 22) // 16 bytes base64url, no padding
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	_, err := GenerateToken(0)
	require.Error(t, err)

	_, err = GenerateToken(-1)
	require.Error(t, err)
}

func TestGenerateToken_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		token := MustGenerateToken(TokenSize128)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}
