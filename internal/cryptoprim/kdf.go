package cryptoprim

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultIterations is the PBKDF2 work factor the orchestrator uses unless
// a caller overrides it.
const DefaultIterations = 200000

// KdfIDPBKDF2SHA256 is the kdf_id byte stored in a STEGFILE header; this is
// the only KDF this version of the container format understands.
const KdfIDPBKDF2SHA256 = 0x01

// KeySize is the AES-256 key length derived by DeriveKey.
const KeySize = 32

// DeriveKey runs PBKDF2-HMAC-SHA-256 over passwordUTF8 with salt and
// iters, producing a 32-byte AES-256 key.
func DeriveKey(passwordUTF8, salt []byte, iters uint32) []byte {
	return pbkdf2.Key(passwordUTF8, salt, int(iters), KeySize, sha256.New)
}
