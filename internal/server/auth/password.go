package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(plain []byte) ([]byte, error)
	Compare(hash, plain []byte) error
}

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher() *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptPasswordHasherWithCost is mostly for tests, where the default cost
// is needlessly slow.
func NewBcryptPasswordHasherWithCost(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(plain, h.cost)
}

// Compare returns nil when plain matches hash.
func (h *BcryptPasswordHasher) Compare(hash, plain []byte) error {
	return bcrypt.CompareHashAndPassword(hash, plain)
}
