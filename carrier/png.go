package carrier

import (
	"image"
	"image/png"
	"io"

	"stegocore/imgcodec"
)

// DecodePNG implements ImageDecoder for PNG, the carrier format
// wqim-centi's img/png.go builds on. The source image is converted to
// a straight RGBA buffer regardless of its native color model, so
// palette and grayscale PNGs carry an embed just as well as true-color
// ones.
func DecodePNG(r io.Reader) (*imgcodec.Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return toRGBA(src), nil
}

// EncodePNG implements ImageEncoder for PNG. PNG is lossless and
// carries its own alpha channel, so this never quantizes or drops bits.
func EncodePNG(w io.Writer, img *imgcodec.Image) error {
	return png.Encode(w, fromRGBA(img))
}

func toRGBA(src image.Image) *imgcodec.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nrgba.Set(x, y, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return &imgcodec.Image{Width: w, Height: h, Pixels: nrgba.Pix}
}

func fromRGBA(img *imgcodec.Image) *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(nrgba.Pix, img.Pixels)
	return nrgba
}
