package stegfile

import (
	"bytes"
	"errors"
	"testing"

	"stegocore/internal/containererr"
)

func TestBuildParseRoundTripPlain(t *testing.T) {
	desc := Descriptor{Name: "a", Mime: "text/plain"}
	built, err := Build(desc, 0, 0, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// S1: header byte-sequence begins 53 54 45 47 46 49 4C 45 01 00 00 01 61 00 0A
	want := []byte{0x53, 0x54, 0x45, 0x47, 0x46, 0x49, 0x4C, 0x45, 0x01, 0x00, 0x00, 0x01, 0x61, 0x00, 0x0A}
	if !bytes.Equal(built[:len(want)], want) {
		t.Errorf("header prefix = % X, want % X", built[:len(want)], want)
	}

	h, err := Parse(built)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if h.Descriptor.Name != "a" || h.Descriptor.Mime != "text/plain" {
		t.Errorf("descriptor = %+v", h.Descriptor)
	}
	if h.BodySize != 0 {
		t.Errorf("BodySize = %d, want 0", h.BodySize)
	}
}

func TestBuildParseRoundTripWithBody(t *testing.T) {
	desc := Descriptor{Name: "n", Mime: "m"}
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	built, err := Build(desc, uint64(len(body)), 0, nil, body)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h, err := Parse(built)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := h.Body(built)
	if !bytes.Equal(got, body) {
		t.Errorf("Body() = % X, want % X", got, body)
	}
}

func TestBuildRequiresCryptoParamsWhenEncrypted(t *testing.T) {
	desc := Descriptor{Name: "n", Mime: "m"}
	_, err := Build(desc, 0, FlagEncrypted, nil, nil)
	if !errors.Is(err, containererr.ErrMissingCryptoParams) {
		t.Errorf("err = %v, want MissingCryptoParams", err)
	}
}

func TestBuildParseEncrypted(t *testing.T) {
	desc := Descriptor{Name: "secret.txt", Mime: "text/plain"}
	crypto := &CryptoParams{
		Salt:       bytes.Repeat([]byte{0x01}, 16),
		Iterations: 200000,
		IV:         bytes.Repeat([]byte{0x02}, 12),
	}
	body := []byte{1, 2, 3, 4, 5}
	built, err := Build(desc, 5, FlagEncrypted, crypto, body)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h, err := Parse(built)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if h.Crypto == nil {
		t.Fatal("expected crypto params to be parsed")
	}
	if h.Crypto.Iterations != 200000 {
		t.Errorf("Iterations = %d", h.Crypto.Iterations)
	}
	if !bytes.Equal(h.Crypto.Salt, crypto.Salt) || !bytes.Equal(h.Crypto.IV, crypto.IV) {
		t.Error("salt/iv mismatch")
	}
}

func TestParseBadMagic(t *testing.T) {
	_, err := Parse([]byte("NOTASTEGFILE container"))
	if !errors.Is(err, containererr.ErrBadMagic) {
		t.Errorf("err = %v, want BadMagic", err)
	}
}

func TestParseHeaderCrcFlip(t *testing.T) {
	desc := Descriptor{Name: "n", Mime: "m"}
	built, err := Build(desc, 0, 0, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Flip a bit inside the header region (well before body_size/CRC).
	flipped := append([]byte{}, built...)
	flipped[len(Magic)+2] ^= 0x01 // high byte of name_len

	_, err = Parse(flipped)
	if err == nil {
		t.Fatal("expected an error from a corrupted header")
	}
	var cerr *containererr.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want *containererr.Error", err)
	}
	switch cerr.Kind {
	case containererr.KindBadMagic, containererr.KindUnsupportedVersion,
		containererr.KindMalformedHeader, containererr.KindHeaderCrcFailed:
		// any of these are acceptable outcomes per spec §8 property 5.
	default:
		t.Errorf("unexpected kind %v", cerr.Kind)
	}
}

func TestParseTruncatedBodyIsUnexpectedEof(t *testing.T) {
	desc := Descriptor{Name: "n", Mime: "m"}
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	built, err := Build(desc, uint64(len(body)), 0, nil, body)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// A valid header claiming a body that the buffer doesn't actually
	// carry (as if a carrier's extracted bit stream ran out early).
	truncated := built[:len(built)-2]
	_, err = Parse(truncated)
	if !errors.Is(err, containererr.ErrUnexpectedEof) {
		t.Errorf("err = %v, want UnexpectedEof", err)
	}
}

func TestLooksLegacy(t *testing.T) {
	if !LooksLegacy([]byte("STEGxyz")) {
		t.Error("expected legacy marker to be detected")
	}
	if LooksLegacy([]byte("STEGFILE...")) {
		t.Error("STEGFILE must not be flagged as legacy")
	}
}
