// Package emoj implements the EMOJ container format: the text-carrier
// header and CRC-guarded body, per spec §3/§4.D.
package emoj

// Magic is the fixed 4-byte prefix of every EMOJ container.
const Magic = "EMOJ"

// Version is the only header version this package understands.
const Version = 1

// FlagEncrypted is the only bit the EMOJ header consults.
const FlagEncrypted = 0x01

// CryptoParams carries the encryption parameters an EMOJ header stores
// when FlagEncrypted is set. EMOJ has no iterations field of its own —
// hide and reveal must be given the same iteration count out of band.
type CryptoParams struct {
	Salt []byte
	IV   []byte
}

// Header is everything Parse recovers from an EMOJ buffer.
type Header struct {
	Flags  uint8
	Crypto *CryptoParams // nil unless FlagEncrypted is set
	Body   []byte
}

// Encrypted reports whether FlagEncrypted is set.
func (h *Header) Encrypted() bool { return h.Flags&FlagEncrypted != 0 }
