// Package bytesutil implements the byte-level primitives the container
// framers build on: CRC-32 checksums and fixed-width big-endian integers.
package bytesutil

import "hash/crc32"

var ieeeTable = crc32.IEEETable

// CRC32 computes the IEEE CRC-32 (polynomial 0xEDB88320) of data, matching
// the checksum every container header/body field in stegfile and emoj is
// validated against.
func CRC32(data []byte) uint32 {
	return crc32.Checksum(data, ieeeTable)
}
