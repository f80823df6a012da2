package imgcodec

// BitsAvailable returns the total number of LSB slots a width×height
// image offers for the given depth (bits/channel, 1-4) and channel set.
func BitsAvailable(width, height, depth int, useAlpha bool) int {
	return width * height * int(channelsFor(useAlpha)) * depth
}

// BytesAvailable is BitsAvailable floored to a whole number of bytes —
// the largest payload Embed will accept for this configuration.
func BytesAvailable(width, height, depth int, useAlpha bool) int {
	return BitsAvailable(width, height, depth, useAlpha) / 8
}

func ceilDivBits(totalBits, depth int) int {
	return (totalBits + depth - 1) / depth
}
