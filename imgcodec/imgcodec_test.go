package imgcodec

import (
	"bytes"
	"errors"
	"testing"
	"testing/quick"

	"stegocore/internal/containererr"
)

func solidImage(w, h int) *Image {
	return &Image{Width: w, Height: h, Pixels: make([]byte, w*h*4)}
}

func TestCapacityMatchesFormula(t *testing.T) {
	got := BytesAvailable(10, 10, 2, false)
	want := 10 * 10 * 3 * 2 / 8
	if got != want {
		t.Fatalf("BytesAvailable = %d, want %d", got, want)
	}
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	img := solidImage(8, 8)
	blob := []byte("hidden payload bytes")
	out, err := Embed(img, blob, 2, false)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	got := ExtractByteStream(out, 2, false)
	if !bytes.Equal(got[:len(blob)], blob) {
		t.Errorf("round trip = %q, want prefix %q", got[:len(blob)], blob)
	}
}

func TestEmbedRejectsOverCapacity(t *testing.T) {
	img := solidImage(2, 2)
	blob := make([]byte, 1000)
	_, err := Embed(img, blob, 1, false)
	if !errors.Is(err, containererr.ErrCapacityExceeded) {
		t.Errorf("err = %v, want CapacityExceeded", err)
	}
}

func TestEmbedIsIdempotent(t *testing.T) {
	img := solidImage(6, 6)
	blob := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}
	once, err := Embed(img, blob, 3, true)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	twice, err := Embed(once, blob, 3, true)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if !bytes.Equal(once.Pixels, twice.Pixels) {
		t.Error("embedding the same blob twice changed the pixel buffer")
	}
}

// TestEmbedExtractRoundTripProperty checks I-ROUNDTRIP across many
// randomly generated blob/depth/channel combinations rather than a
// handful of fixed fixtures.
func TestEmbedExtractRoundTripProperty(t *testing.T) {
	prop := func(blobLen uint8, depthSeed uint8, alpha bool) bool {
		depth := int(depthSeed%4) + 1
		blob := make([]byte, int(blobLen)%64)
		for i := range blob {
			blob[i] = byte(i * 7)
		}
		img := solidImage(16, 16)
		out, err := Embed(img, blob, depth, alpha)
		if err != nil {
			return false
		}
		got := ExtractByteStream(out, depth, alpha)
		return bytes.Equal(got[:len(blob)], blob)
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestEmbedLeavesUntouchedChannelsAlone(t *testing.T) {
	img := solidImage(4, 4)
	for i := range img.Pixels {
		img.Pixels[i] = 0xFF
	}
	blob := []byte{0x00}
	out, err := Embed(img, blob, 1, false)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	// Only the first 8 R/G/B channels (first 2-3 pixels) carry the blob's
	// bits; far-away pixels must retain their original value.
	lastPixelBase := (4*4 - 1) * 4
	if out.Pixels[lastPixelBase] != 0xFF {
		t.Error("embed touched a channel beyond what the blob needed")
	}
}
