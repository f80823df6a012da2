package imgcodec

// ExtractByteStream recovers up to BytesAvailable(img, depth, useAlpha)
// bytes from img's low depth bits, in the same row-major, R,G,B,(A)
// visiting order Embed uses. It never fails on its own — callers that
// asked for more structure than the image actually holds learn that
// from the framer, which reports a stream that ends before the declared
// body as UnexpectedEof, per spec §4.E.
func ExtractByteStream(img *Image, depth int, useAlpha bool) []byte {
	channels := int(channelsFor(useAlpha))
	bytesAvail := BytesAvailable(img.Width, img.Height, depth, useAlpha)
	out := make([]byte, bytesAvail)

	var bitBuf uint32
	bitCount := 0
	outIdx := 0
	mask := byte((1 << uint(depth)) - 1)

outer:
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			base := (y*img.Width + x) * 4
			for c := 0; c < channels; c++ {
				if outIdx >= bytesAvail {
					break outer
				}
				v := img.Pixels[base+c] & mask
				bitBuf = bitBuf<<uint(depth) | uint32(v)
				bitCount += depth
				for bitCount >= 8 {
					bitCount -= 8
					out[outIdx] = byte(bitBuf >> uint(bitCount))
					outIdx++
					if outIdx >= bytesAvail {
						break outer
					}
				}
			}
		}
	}
	return out[:outIdx]
}
