package auth_test

import (
	"strings"
	"testing"

	"meetup-groups-backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	passwords := auth.NewPasswordServiceWithCost(bcrypt.MinCost)

	hash, err := passwords.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, passwords.Verify(hash, "secret123"))
	assert.Error(t, passwords.Verify(hash, "wrong-password"))
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	passwords := auth.NewPasswordServiceWithCost(bcrypt.MinCost)

	first, err := passwords.Hash("secret123")
	assert.NoError(t, err)
	second, err := passwords.Hash("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordService_RejectsOverlongPassword(t *testing.T) {
	passwords := auth.NewPasswordServiceWithCost(bcrypt.MinCost)

	hash, err := passwords.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestPasswordService_VerifyRejectsBadHash(t *testing.T) {
	passwords := auth.NewPasswordServiceWithCost(bcrypt.MinCost)

	assert.Error(t, passwords.Verify("not-a-bcrypt-hash", "secret123"))
}
