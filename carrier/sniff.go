package carrier

import (
	"bytes"

	"stegocore/imgcodec"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
var bmpSignature = []byte{'B', 'M'}

// Sniff peeks at buf's leading bytes and picks the matching decoder.
// Callers that already have the whole carrier in memory (the common
// case for this project) call this instead of asking the host to name
// a format.
func Sniff(buf []byte) (ImageDecoder, bool) {
	switch {
	case bytes.HasPrefix(buf, pngSignature):
		return DecodePNG, true
	case bytes.HasPrefix(buf, bmpSignature):
		return DecodeBMP, true
	default:
		return nil, false
	}
}

// Decode sniffs buf's format and decodes it in one step.
func Decode(buf []byte) (*imgcodec.Image, error) {
	dec, ok := Sniff(buf)
	if !ok {
		return nil, errUnknownFormat
	}
	return dec(bytes.NewReader(buf))
}

var errUnknownFormat = &unknownFormatError{}

type unknownFormatError struct{}

func (*unknownFormatError) Error() string { return "carrier: unrecognized image format" }
