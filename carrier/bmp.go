package carrier

import (
	"io"

	"golang.org/x/image/bmp"

	"stegocore/imgcodec"
)

// DecodeBMP and EncodeBMP implement ImageDecoder/ImageEncoder for BMP,
// the secondary carrier format this project supplements beyond
// spec.md's PNG-only examples (wqim-centi also carries a BMP codec
// alongside its PNG one in stegano/img).
func DecodeBMP(r io.Reader) (*imgcodec.Image, error) {
	src, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return toRGBA(src), nil
}

// EncodeBMP writes img as an uncompressed BMP: 32-bit when any pixel is
// translucent, 24-bit when every alpha byte is 0xFF. BMP's classic
// palette/16-bit modes would quantize and are never used here.
func EncodeBMP(w io.Writer, img *imgcodec.Image) error {
	return bmp.Encode(w, fromRGBA(img))
}
