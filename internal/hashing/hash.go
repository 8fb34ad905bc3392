// Package hashing implements the one-way password digest used everywhere a
// password is stored or compared.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// salt is the fixed application-wide constant appended to every password
// before hashing. Changing it invalidates every stored digest.
const salt = "palette_salt_v1"

// DigestLength is the length of a digest in hex characters.
const DigestLength = sha256.Size * 2

// Hasher turns a plaintext password into a digest. Implementations must be
// deterministic and safe for concurrent use.
type Hasher interface {
	Hash(plaintext string) string
}

// SHA256Hasher is the production Hasher: SHA-256 over the salted plaintext,
// encoded as lowercase hex.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher { return &SHA256Hasher{} }

func (SHA256Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext + salt))
	return hex.EncodeToString(sum[:])
}
