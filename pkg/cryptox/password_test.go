package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
}

func TestHashSecret_UniqueSalts(t *testing.T) {
	a, err := HashSecret("same secret")
	require.NoError(t, err)
	b, err := HashSecret("same secret")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestVerifySecret_Success(t *testing.T) {
	hash, err := HashSecret("admin-key-123")
	require.NoError(t, err)

	require.NoError(t, VerifySecret("admin-key-123", hash))
}

func TestVerifySecret_WrongSecret(t *testing.T) {
	hash, err := HashSecret("admin-key-123")
	require.NoError(t, err)

	require.Error(t, VerifySecret("admin-key-124", hash))
}

func TestVerifySecret_InvalidHashFormat(t *testing.T) {
	require.Error(t, VerifySecret("whatever", "not-a-phc-string"))
	require.Error(t, VerifySecret("whatever", "$bcrypt$v=19$m=1,t=1,p=1$AA$AA"))
	require.Error(t, VerifySecret("whatever", "$argon2id$v=18$m=1,t=1,p=1$AA$AA"))
}
