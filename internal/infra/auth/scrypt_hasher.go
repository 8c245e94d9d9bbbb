// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/scrypt"

	"carvalue/internal/domain/entity"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"
)

// scrypt parameters. Changing any of them invalidates every stored credential.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 8
)

// scryptHasher is a concrete implementation of the PasswordHasher interface using scrypt.
type scryptHasher struct {
	n, r, p int
	keyLen  int
	saltLen int
}

// NewScryptHasher is the constructor for scryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewScryptHasher() service.PasswordHasher {
	return &scryptHasher{
		n:       scryptN,
		r:       scryptR,
		p:       scryptP,
		keyLen:  scryptKeyLen,
		saltLen: saltLen,
	}
}

// Hash derives a credential from password under a fresh random salt and
// returns its "salt.hash" form.
func (h *scryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", service.ErrEmptyPassword
	}

	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	hash, err := h.derive(password, salt)
	if err != nil {
		return "", err
	}

	return entity.Credential{Salt: salt, Hash: hash}.String(), nil
}

// Verify recomputes the hash of password with the stored salt and compares
// it in constant time. A stored value that does not parse is an error.
func (h *scryptHasher) Verify(password, stored string) (bool, error) {
	cred, err := entity.ParseCredential(stored)
	if err != nil {
		return false, err
	}

	hash, err := h.derive(password, cred.Salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(hash, cred.Hash) == 1, nil
}

func (h *scryptHasher) derive(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, h.n, h.r, h.p, h.keyLen)
	if err != nil {
		return nil, errors.Wrap(err, "scrypt key derivation failed")
	}

	return key, nil
}
