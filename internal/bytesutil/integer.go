package bytesutil

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encoding is the byte order for every length-prefixed and fixed-width
// field in the container formats: big-endian throughout.
var Encoding = binary.BigEndian

// PutUint16 appends v as a 2-byte big-endian field. It rejects values that
// don't fit in 16 bits rather than silently truncating them.
func PutUint16(dst []byte, v int) ([]byte, error) {
	if v < 0 || v > 0xFFFF {
		return nil, fmt.Errorf("bytesutil: value %d does not fit in 16 bits", v)
	}
	buf := make([]byte, 2)
	Encoding.PutUint16(buf, uint16(v))
	return append(dst, buf...), nil
}

// PutUint32 appends v as a 4-byte big-endian field.
func PutUint32(dst []byte, v uint64) ([]byte, error) {
	if v > 0xFFFFFFFF {
		return nil, fmt.Errorf("bytesutil: value %d does not fit in 32 bits", v)
	}
	buf := make([]byte, 4)
	Encoding.PutUint32(buf, uint32(v))
	return append(dst, buf...), nil
}

// PutUint64 appends v as an 8-byte big-endian field. Every uint64 fits, so
// there is nothing to reject.
func PutUint64(dst []byte, v uint64) []byte {
	buf := make([]byte, 8)
	Encoding.PutUint64(buf, v)
	return append(dst, buf...)
}

// ReadUint16 reads a 2-byte big-endian field from r.
func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Encoding.Uint16(buf[:]), nil
}

// ReadUint32 reads a 4-byte big-endian field from r.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Encoding.Uint32(buf[:]), nil
}

// ReadUint64 reads an 8-byte big-endian field from r.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Encoding.Uint64(buf[:]), nil
}

// ReadBytes reads n bytes from r, distinct from io.ReadFull only in that it
// allocates the destination, which every caller in stegfile/emoj wants.
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("bytesutil: negative length %d", n)
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
