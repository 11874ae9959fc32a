// Package cryptox derives and checks password verifiers for the optional
// per-user credential policy.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes generated per user.
const SaltSize = 16

// DeriveKey stretches password with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key; only the verifier is ever persisted.
func MakeVerifier(key []byte) []byte {
	sum := sha256.Sum256(key)
	return sum[:]
}

// NewVerifier generates a fresh salt and returns it with the verifier for password.
func NewVerifier(password []byte) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// CheckPassword reports whether password matches the stored salt/verifier pair.
func CheckPassword(password, salt, verifier []byte) bool {
	if len(salt) == 0 || len(verifier) == 0 {
		return false
	}
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}
