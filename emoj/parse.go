package emoj

import (
	"bytes"

	"stegocore/internal/bytesutil"
	"stegocore/internal/containererr"
)

// Parse reads an EMOJ container out of buf, per spec §4.D. Only the body
// is CRC-checked — there is no header CRC in this format.
func Parse(buf []byte) (*Header, error) {
	const op = "emoj.Parse"

	if len(buf) < len(Magic) || !bytes.Equal(buf[:len(Magic)], []byte(Magic)) {
		return nil, containererr.New(containererr.KindBadMagic, op, nil)
	}
	r := bytes.NewReader(buf[len(Magic):])

	versionByte, err := r.ReadByte()
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	if versionByte != Version {
		return nil, containererr.New(containererr.KindUnsupportedVersion, op, nil)
	}

	flagsByte, err := r.ReadByte()
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	saltLen, err := r.ReadByte()
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	salt, err := bytesutil.ReadBytes(r, int(saltLen))
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	ivLen, err := r.ReadByte()
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	iv, err := bytesutil.ReadBytes(r, int(ivLen))
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	dataLen, err := bytesutil.ReadUint32(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	wantCRC, err := bytesutil.ReadUint32(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	if r.Len() < int(dataLen) {
		return nil, containererr.New(containererr.KindUnexpectedEof, op, nil)
	}
	body, err := bytesutil.ReadBytes(r, int(dataLen))
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	if bytesutil.CRC32(body) != wantCRC {
		return nil, containererr.New(containererr.KindPayloadCorrupt, op, nil)
	}

	flags := flagsByte
	var crypto *CryptoParams
	if flags&FlagEncrypted != 0 {
		crypto = &CryptoParams{Salt: salt, IV: iv}
	}

	return &Header{Flags: flags, Crypto: crypto, Body: body}, nil
}
