package stegfile

import (
	"stegocore/internal/bytesutil"
	"stegocore/internal/containererr"
	"stegocore/internal/cryptoprim"
)

// Build assembles a STEGFILE header (magic through header_crc, §3) and
// appends body_size/body after it. crypto is required iff
// flags.Has(FlagEncrypted); its absence is a precondition failure per
// spec §4.C.
func Build(desc Descriptor, originalSize uint64, flags Flags, crypto *CryptoParams, body []byte) ([]byte, error) {
	const op = "stegfile.Build"

	if flags.Has(FlagEncrypted) {
		if crypto == nil || crypto.Salt == nil || crypto.IV == nil {
			return nil, containererr.New(containererr.KindMissingCryptoParams, op, nil)
		}
	}

	buf := make([]byte, 0, 64+len(desc.Name)+len(desc.Mime)+len(body))
	buf = append(buf, Magic...)
	buf = append(buf, byte(Version))
	buf = append(buf, byte(flags))

	var err error
	nameBytes := []byte(desc.Name)
	if buf, err = bytesutil.PutUint16(buf, len(nameBytes)); err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	buf = append(buf, nameBytes...)

	mimeBytes := []byte(desc.Mime)
	if buf, err = bytesutil.PutUint16(buf, len(mimeBytes)); err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	buf = append(buf, mimeBytes...)

	buf = bytesutil.PutUint64(buf, originalSize)

	if flags.Has(FlagEncrypted) {
		if buf, err = bytesutil.PutUint16(buf, len(crypto.Salt)); err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		buf = append(buf, crypto.Salt...)
		buf = append(buf, KdfIDPBKDF2SHA256)
		if buf, err = bytesutil.PutUint32(buf, uint64(crypto.Iterations)); err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		if len(crypto.IV) > 0xFF {
			return nil, containererr.New(containererr.KindMalformedHeader, op, nil)
		}
		buf = append(buf, byte(len(crypto.IV)))
		buf = append(buf, crypto.IV...)
	}

	crc := bytesutil.CRC32(buf)
	if buf, err = bytesutil.PutUint32(buf, uint64(crc)); err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	if buf, err = bytesutil.PutUint32(buf, uint64(len(body))); err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	buf = append(buf, body...)

	return buf, nil
}

// HeaderSize returns the byte length of everything Build would produce
// for desc/encrypted except the body itself — magic through header_crc
// plus the trailing body_size field. This is the "header_size" the
// capacity formula in spec §4.E charges against a carrier's
// bytes_available; only the bytes after it are available to the body.
func HeaderSize(desc Descriptor, encrypted bool) (int, error) {
	var flags Flags
	var crypto *CryptoParams
	if encrypted {
		flags |= FlagEncrypted
		crypto = &CryptoParams{
			Salt: make([]byte, cryptoprim.SaltSize),
			IV:   make([]byte, cryptoprim.IVSize),
		}
	}
	built, err := Build(desc, 0, flags, crypto, nil)
	if err != nil {
		return 0, err
	}
	return len(built), nil // body is empty, so built is exactly the overhead
}
