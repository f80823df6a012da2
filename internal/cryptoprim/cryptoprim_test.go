package cryptoprim

import (
	"bytes"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	key := DeriveKey([]byte("correct horse"), []byte("0123456789abcdef"), 1000)
	iv, err := IV(IVSize)
	if err != nil {
		t.Fatalf("IV: %v", err)
	}
	plaintext := []byte("the quick brown fox")

	sealed, err := Seal(key, iv, plaintext)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if len(sealed) != len(plaintext)+TagSize {
		t.Errorf("sealed length = %d, want %d", len(sealed), len(plaintext)+TagSize)
	}

	opened, err := Open(key, iv, sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("Open() = %q, want %q", opened, plaintext)
	}
}

func TestOpenWrongKeyFails(t *testing.T) {
	key1 := DeriveKey([]byte("pw"), []byte("0123456789abcdef"), 1000)
	key2 := DeriveKey([]byte("px"), []byte("0123456789abcdef"), 1000)
	iv, _ := IV(IVSize)

	sealed, err := Seal(key1, iv, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Open(key2, iv, sealed); err == nil {
		t.Error("expected Open with wrong key to fail")
	}
}

func TestCompressOpportunisticKeepsSmallerForm(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 4096)
	out, ok, err := CompressOpportunistic(data)
	if err != nil {
		t.Fatalf("CompressOpportunistic: %v", err)
	}
	if !ok {
		t.Error("expected highly compressible data to compress smaller")
	}
	if len(out) >= len(data) {
		t.Errorf("compressed length %d not smaller than %d", len(out), len(data))
	}
	back, err := Decompress(out)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Error("decompressed data does not match original")
	}
}

func TestCompressOpportunisticDiscardsLargerForm(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	out, ok, err := CompressOpportunistic(data)
	if err != nil {
		t.Fatalf("CompressOpportunistic: %v", err)
	}
	if ok {
		t.Error("expected tiny incompressible data to be rejected")
	}
	if !bytes.Equal(out, data) {
		t.Error("expected original bytes back when compression is discarded")
	}
}
