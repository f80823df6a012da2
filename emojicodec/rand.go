package emojicodec

import (
	"crypto/rand"
	"math/big"
)

// randIndex returns a uniformly-distributed index in [0, n), grounded on
// the CSPRNG-backed random helpers the rest of this codebase uses for
// anything security-adjacent, rather than math/rand's seeded generator.
func randIndex(n int) (int, error) {
	limit := big.NewInt(int64(n))
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
