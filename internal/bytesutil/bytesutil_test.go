package bytesutil

import (
	"bytes"
	"testing"
)

func TestCRC32KnownVector(t *testing.T) {
	// "123456789" has a well-known IEEE CRC-32 of 0xCBF43926.
	got := CRC32([]byte("123456789"))
	want := uint32(0xCBF43926)
	if got != want {
		t.Errorf("CRC32() = %#x, want %#x", got, want)
	}
}

func TestPutUint16RoundTrip(t *testing.T) {
	tests := []int{0, 1, 255, 256, 65535}
	for _, v := range tests {
		buf, err := PutUint16(nil, v)
		if err != nil {
			t.Fatalf("PutUint16(%d): %v", v, err)
		}
		got, err := ReadUint16(bytes.NewReader(buf))
		if err != nil {
			t.Fatalf("ReadUint16: %v", err)
		}
		if int(got) != v {
			t.Errorf("round trip %d => %d", v, got)
		}
	}
}

func TestPutUint16RejectsOverflow(t *testing.T) {
	if _, err := PutUint16(nil, 65536); err == nil {
		t.Error("expected error for value wider than 16 bits")
	}
	if _, err := PutUint16(nil, -1); err == nil {
		t.Error("expected error for negative value")
	}
}

func TestPutUint32RejectsOverflow(t *testing.T) {
	if _, err := PutUint32(nil, 1<<32); err == nil {
		t.Error("expected error for value wider than 32 bits")
	}
}

func TestPutUint64RoundTrip(t *testing.T) {
	buf := PutUint64(nil, 0xDEADBEEFCAFEBABE)
	got, err := ReadUint64(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("ReadUint64: %v", err)
	}
	if got != 0xDEADBEEFCAFEBABE {
		t.Errorf("got %#x", got)
	}
}

func TestReadBytes(t *testing.T) {
	src := bytes.NewReader([]byte("hello world"))
	got, err := ReadBytes(src, 5)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q", got)
	}
}
