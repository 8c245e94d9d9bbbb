package entity

import (
	"encoding/hex"
	"strings"

	"carvalue/internal/errors"
)

// CredentialSeparator joins the salt and hash fields of a serialized Credential.
const CredentialSeparator = "."

// ErrMalformedCredential is returned when a stored credential does not split
// into exactly two non-empty hex fields.
var ErrMalformedCredential = errors.New("malformed credential")

// Credential is a salted password hash. It is created once per signup and
// only read afterwards.
type Credential struct {
	Salt []byte
	Hash []byte
}

// String serializes the credential as hex(salt) + "." + hex(hash).
func (c Credential) String() string {
	return hex.EncodeToString(c.Salt) + CredentialSeparator + hex.EncodeToString(c.Hash)
}

// ParseCredential decodes a serialized credential. Any input that is not
// exactly "salt.hash" with non-empty hex fields yields ErrMalformedCredential.
func ParseCredential(stored string) (Credential, error) {
	if strings.Count(stored, CredentialSeparator) != 1 {
		return Credential{}, errors.Wrap(ErrMalformedCredential, "expected exactly one separator")
	}

	saltHex, hashHex, _ := strings.Cut(stored, CredentialSeparator)
	if saltHex == "" || hashHex == "" {
		return Credential{}, errors.Wrap(ErrMalformedCredential, "empty salt or hash field")
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return Credential{}, errors.Wrap(ErrMalformedCredential, "salt is not hex encoded")
	}

	hash, err := hex.DecodeString(hashHex)
	if err != nil {
		return Credential{}, errors.Wrap(ErrMalformedCredential, "hash is not hex encoded")
	}

	return Credential{Salt: salt, Hash: hash}, nil
}
