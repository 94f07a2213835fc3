package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordAsBcrypt(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("p@ss1")
	assert.NoError(t, err)
	assert.NotEqual(t, "p@ss1", hash)

	// Salting makes two hashes of the same plaintext differ
	hash2, err := HashPasswordAsBcrypt("p@ss1")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("p@ss1")
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash(hash, "p@ss1"))
	assert.False(t, CheckPasswordHash(hash, "wrong"))
	assert.False(t, CheckPasswordHash(hash, ""))

	// Naive equality against the stored digest must never pass
	assert.False(t, CheckPasswordHash(hash, hash))
}

func TestCheckPasswordHashMalformedDigest(t *testing.T) {
	assert.False(t, CheckPasswordHash("not-a-bcrypt-digest", "p@ss1"))
}
