package emoj

import (
	"stegocore/internal/bytesutil"
	"stegocore/internal/containererr"
)

// Build assembles an EMOJ container: magic, version, flags, salt/iv
// (zero-length when not encrypted), data_len, crc, body. crypto is
// required iff encrypted is true.
func Build(encrypted bool, crypto *CryptoParams, body []byte) ([]byte, error) {
	const op = "emoj.Build"

	var salt, iv []byte
	flags := uint8(0)
	if encrypted {
		if crypto == nil || crypto.Salt == nil || crypto.IV == nil {
			return nil, containererr.New(containererr.KindMissingCryptoParams, op, nil)
		}
		flags |= FlagEncrypted
		salt, iv = crypto.Salt, crypto.IV
	}
	if len(salt) > 0xFF || len(iv) > 0xFF {
		return nil, containererr.New(containererr.KindMalformedHeader, op, nil)
	}

	buf := make([]byte, 0, 16+len(salt)+len(iv)+len(body))
	buf = append(buf, Magic...)
	buf = append(buf, byte(Version))
	buf = append(buf, flags)
	buf = append(buf, byte(len(salt)))
	buf = append(buf, salt...)
	buf = append(buf, byte(len(iv)))
	buf = append(buf, iv...)

	var err error
	if buf, err = bytesutil.PutUint32(buf, uint64(len(body))); err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	crc := bytesutil.CRC32(body)
	if buf, err = bytesutil.PutUint32(buf, uint64(crc)); err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	buf = append(buf, body...)

	return buf, nil
}
