package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"usersvc/internal/pkg/password"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.True(t, h.Compare("password123", hashed))
	assert.False(t, h.Compare("wrongpassword", hashed))
}

func TestBcryptHasher_CompareKnownHash(t *testing.T) {
	// hash de "password" com custo 10
	const known = "$2a$10$RVHD7EksNzceEezVsMFlCeaa5PYJKGkkiqkQbnC/ezjTIAymuLwui"
	h := password.NewBcryptHasher(0)

	assert.True(t, h.Compare("password", known))
	assert.False(t, h.Compare("wrongpassword", known))
}

func TestBcryptHasher_MultibytePasswordOver72Bytes(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)
	pw := strings.Repeat("é", 50) // 50 caracteres, 100 bytes

	hashed, err := h.Hash(pw)
	require.NoError(t, err)

	assert.True(t, h.Compare(pw, hashed))
	assert.False(t, h.Compare(strings.Repeat("e", 50), hashed))
}

func TestBcryptHasher_IgnoresBytesPast72(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)
	base := strings.Repeat("a", 72)

	hashed, err := h.Hash(base + "suffix")
	require.NoError(t, err)

	assert.True(t, h.Compare(base+"suffix", hashed))
	assert.True(t, h.Compare(base, hashed))
}
