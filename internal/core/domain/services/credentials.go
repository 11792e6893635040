package services

import (
	"loadboard/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// Credentials hashes registrant passwords and checks login attempts against
// stored bcrypt hashes.
type Credentials struct {
	cost int
}

// NewCredentials returns Credentials hashing with the given bcrypt cost. A cost
// outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewCredentials(cost int) Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Credentials{cost: cost}
}

// Hash returns the bcrypt hash of password, or "" for an empty password.
func (c Credentials) Hash(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return string(hash), nil
}

// Check compares password with hash. Any mismatch, including a malformed hash,
// is a NotAuthorizedError that does not reveal which part was wrong.
func (c Credentials) Check(hash, password string) error {
	if hash == "" {
		return errs.NewNotAuthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errs.NewNotAuthorizedError("invalid credentials")
	}
	return nil
}
