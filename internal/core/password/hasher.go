// Package password provides one-way transforms from a plaintext secret to a
// storable verifier.
//
// Two schemes are available. The default "sha256" scheme reproduces the
// legacy system byte for byte: a single unsalted SHA-256 digest, base64
// encoded. It is deterministic and unstretched, which makes it WEAK against
// offline dictionary attacks. It exists only for backward compatibility with
// verifiers already in the store; new deployments should set the "bcrypt"
// scheme instead.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// Hasher turns a plaintext into a verifier and checks plaintexts against
// stored verifiers. Implementations never reverse the transform.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, verifier string) bool
}

// Schemes accepted by New.
const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// New returns the hasher for the named scheme. An empty scheme selects
// the legacy SHA-256 hasher.
func New(scheme string) (Hasher, error) {
	switch scheme {
	case "", SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("password: unknown scheme %q", scheme)
	}
}

// SHA256Hasher is the legacy unsalted digest scheme. See the package
// comment before choosing it.
type SHA256Hasher struct{}

// Hash returns base64(sha256(plaintext)).
func (SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares in constant time.
func (h SHA256Hasher) Verify(plaintext, verifier string) bool {
	computed, _ := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(verifier)) == 1
}
