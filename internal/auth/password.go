// Package auth implements credential hashing and bearer token handling.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt hashing with a fixed cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using the bcrypt default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a salted one-way digest of the plaintext password.
// Two calls on the same input yield different digests.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored digest. A malformed
// digest verifies false rather than erroring; Verify is the only correct
// equality check for stored passwords.
func (h *PasswordHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
