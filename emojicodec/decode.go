package emojicodec

import "stegocore/internal/containererr"

// Decode scans text code point by code point, collecting only ZWSP/ZWNJ
// characters into a bit string in encounter order and ignoring every
// other character — cover graphemes, whitespace, anything a lossy
// clipboard round trip might have mangled in between. A bit count that
// is not a multiple of 8 is truncated to the largest multiple of 8
// (tolerant salvage); an empty result is NoHiddenData.
func Decode(text string) ([]byte, error) {
	const op = "emojicodec.Decode"

	bits := make([]byte, 0, len(text))
	for _, r := range text {
		switch r {
		case zwsp:
			bits = append(bits, 0)
		case zwnj:
			bits = append(bits, 1)
		}
	}

	usable := len(bits) - len(bits)%8
	bits = bits[:usable]
	if len(bits) == 0 {
		return nil, containererr.New(containererr.KindNoHiddenData, op, nil)
	}

	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i*8+j]
		}
		out[i] = b
	}
	return out, nil
}
