// Package cryptox derives and checks the password credential stored for
// each user. Plain passwords are never persisted: a user row keeps a random
// salt and a verifier, sha256(argon2id(password, salt)).
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/lifecalc/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 32
	keySize  = 32
)

// DeriveKey stretches password with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// MakeVerifier hashes a derived key into the value stored at rest.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// NewCredential generates a fresh salt for password and returns it together
// with the matching verifier.
func NewCredential(password []byte) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// CheckCredential reports whether password reproduces verifier under salt.
// The comparison is constant time.
func CheckCredential(password, salt, verifier []byte) bool {
	if len(salt) == 0 || len(verifier) == 0 {
		return false
	}
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}
