// Package cryptoprim implements the crypto primitives the container
// formats and pipeline build on: CSPRNG salt/IV, PBKDF2 key derivation,
// AES-256-GCM seal/open, and opportunistic gzip framing.
package cryptoprim

import "crypto/rand"

// SaltSize is the width of a STEGFILE/EMOJ salt field for conformant
// writers.
const SaltSize = 16

// IVSize is the width of the AES-GCM nonce this package always requests.
const IVSize = 12

// Salt returns 16 random bytes from a cryptographic RNG.
func Salt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// IV returns n random bytes; callers always pass IVSize.
func IV(n int) ([]byte, error) {
	return randomBytes(n)
}

func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
