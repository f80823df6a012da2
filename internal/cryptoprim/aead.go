package cryptoprim

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// TagSize is the width of the GCM authentication tag AES-256-GCM appends
// to every sealed message.
const TagSize = 16

// Seal encrypts plaintext with AES-256-GCM under key and iv, returning
// ciphertext||tag. key must be 32 bytes and iv must be 12 bytes (IVSize).
func Seal(key, iv, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != aead.NonceSize() {
		return nil, fmt.Errorf("cryptoprim: iv must be %d bytes, got %d", aead.NonceSize(), len(iv))
	}
	return aead.Seal(nil, iv, plaintext, nil), nil
}

// Open decrypts a ciphertext||tag blob produced by Seal. A wrong key or
// tampered body surfaces as an opaque AEAD failure; the caller maps that
// to containererr.ErrAuthFailed, never distinguishing the two.
func Open(key, iv, sealed []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != aead.NonceSize() {
		return nil, fmt.Errorf("cryptoprim: iv must be %d bytes, got %d", aead.NonceSize(), len(iv))
	}
	return aead.Open(nil, iv, sealed, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("cryptoprim: key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
