// Package stegfile implements the STEGFILE container format: the
// image-carrier header, CRC-guarded per spec §3/§4.C, plus its trailing
// body_size/body fields.
package stegfile

// Magic is the fixed 8-byte prefix of every STEGFILE container.
const Magic = "STEGFILE"

// Version is the only header version this package understands.
const Version = 1

// KdfIDPBKDF2SHA256 is the sole kdf_id value a conformant header may carry.
const KdfIDPBKDF2SHA256 = 0x01

// Flags is the container's one-byte bitfield.
type Flags uint8

const (
	FlagEncrypted  Flags = 0x01
	FlagCompressed Flags = 0x02
	FlagIsImage    Flags = 0x04
	FlagIsAudio    Flags = 0x08
)

// Has reports whether f carries bit.
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Descriptor names and types the payload, independent of its bytes.
type Descriptor struct {
	Name string
	Mime string
}

// CryptoParams carries the encryption parameters a STEGFILE header stores
// when FlagEncrypted is set.
type CryptoParams struct {
	Salt       []byte
	Iterations uint32
	IV         []byte
}

// Header is everything Parse recovers from a STEGFILE buffer, short of the
// body bytes themselves.
type Header struct {
	Flags        Flags
	Descriptor   Descriptor
	OriginalSize uint64
	Crypto       *CryptoParams // nil unless FlagEncrypted
	BodySize     uint32
	// BodyOffset is the index into the source buffer where body[BodySize]
	// begins — i.e. the "consumed_bytes" spec §4.C's parse() returns.
	BodyOffset int
}
