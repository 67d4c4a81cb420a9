package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted one-way password hashes.
type Hasher struct {
	cost int
}

// NewHasher builds a bcrypt hasher. A cost of zero selects the library
// default.
func NewHasher(cost int) Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash derives a salted hash from the password.
func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash. A malformed
// hash from the store is treated as a verification failure, never an error.
func (h Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
