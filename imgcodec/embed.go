package imgcodec

import "stegocore/internal/containererr"

// bitGroupReader hands out successive depth-bit groups from data,
// MSB-first within each byte. The final group is zero-padded in its low
// bits when len(data)*8 is not a multiple of depth, so re-embedding the
// same blob always writes the same bits — Embed is idempotent.
type bitGroupReader struct {
	data      []byte
	totalBits int
	pos       int
}

func newBitGroupReader(data []byte) *bitGroupReader {
	return &bitGroupReader{data: data, totalBits: len(data) * 8}
}

func (r *bitGroupReader) bit(i int) int {
	b := r.data[i/8]
	shift := 7 - uint(i%8)
	return int((b >> shift) & 1)
}

func (r *bitGroupReader) next(depth int) (value int, ok bool) {
	remaining := r.totalBits - r.pos
	if remaining <= 0 {
		return 0, false
	}
	n := depth
	if remaining < depth {
		n = remaining
	}
	for i := 0; i < n; i++ {
		value = value<<1 | r.bit(r.pos)
		r.pos++
	}
	if n < depth {
		value <<= uint(depth - n)
	}
	return value, true
}

// Embed returns a copy of img with blob packed into the low depth bits
// of each visited pixel channel, row-major, channel order R,G,B,(A), per
// spec §4.E. It visits only as many channels as the blob needs; pixels
// beyond that are left untouched. Returns CapacityExceeded if blob does
// not fit the image at this depth/channel-set.
func Embed(img *Image, blob []byte, depth int, useAlpha bool) (*Image, error) {
	const op = "imgcodec.Embed"

	channels := int(channelsFor(useAlpha))
	bytesAvail := BytesAvailable(img.Width, img.Height, depth, useAlpha)
	if len(blob) > bytesAvail {
		return nil, containererr.New(containererr.KindCapacityExceeded, op, nil)
	}

	out := img.Clone()
	mask := byte((1 << uint(depth)) - 1)
	br := newBitGroupReader(blob)
	totalGroups := ceilDivBits(len(blob)*8, depth)
	written := 0

outer:
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			base := (y*out.Width + x) * 4
			for c := 0; c < channels; c++ {
				if written >= totalGroups {
					break outer
				}
				group, ok := br.next(depth)
				if !ok {
					break outer
				}
				idx := base + c
				out.Pixels[idx] = (out.Pixels[idx] &^ mask) | (byte(group) & mask)
				written++
			}
		}
	}
	return out, nil
}
