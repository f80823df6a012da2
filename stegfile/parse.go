package stegfile

import (
	"bytes"
	"unicode/utf8"

	"stegocore/internal/bytesutil"
	"stegocore/internal/containererr"
)

// LooksLegacy reports whether buf begins with the pre-STEGFILE legacy
// marker "STEG" not followed by "FILE" (spec §4.G/§9). Callers — the
// image-reveal auto-detection loop — check this before trusting a
// BadMagic result from Parse.
func LooksLegacy(buf []byte) bool {
	return len(buf) >= 5 &&
		buf[0] == 'S' && buf[1] == 'T' && buf[2] == 'E' && buf[3] == 'G' &&
		buf[4] != 'F'
}

// Parse reads a STEGFILE container out of buf, per spec §4.C. The header
// CRC is always checked since buf is already fully buffered in memory —
// the streaming exemption in §4.C/§9 doesn't apply here.
func Parse(buf []byte) (*Header, error) {
	const op = "stegfile.Parse"

	if len(buf) < len(Magic) || !bytes.Equal(buf[:len(Magic)], []byte(Magic)) {
		return nil, containererr.New(containererr.KindBadMagic, op, nil)
	}
	r := bytes.NewReader(buf[len(Magic):])

	versionByte, err := readByte(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	if versionByte != Version {
		return nil, containererr.New(containererr.KindUnsupportedVersion, op, nil)
	}

	flagsByte, err := readByte(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	flags := Flags(flagsByte)

	name, err := readLengthPrefixedString(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	mime, err := readLengthPrefixedString(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	origSize, err := bytesutil.ReadUint64(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	var crypto *CryptoParams
	if flags.Has(FlagEncrypted) {
		saltLen, err := bytesutil.ReadUint16(r)
		if err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		salt, err := bytesutil.ReadBytes(r, int(saltLen))
		if err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		kdfID, err := readByte(r)
		if err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		if kdfID != KdfIDPBKDF2SHA256 {
			return nil, containererr.New(containererr.KindUnknownKdf, op, nil)
		}
		iterations, err := bytesutil.ReadUint32(r)
		if err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		ivLen, err := readByte(r)
		if err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		iv, err := bytesutil.ReadBytes(r, int(ivLen))
		if err != nil {
			return nil, containererr.New(containererr.KindMalformedHeader, op, err)
		}
		crypto = &CryptoParams{Salt: salt, Iterations: iterations, IV: iv}
	}

	// Everything from magic through here (exclusive of the CRC field
	// itself) is covered by header_crc.
	consumedSoFar := len(buf) - r.Len() // absolute offset into buf
	headerCovered := buf[:consumedSoFar]

	wantCRC, err := bytesutil.ReadUint32(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}
	gotCRC := bytesutil.CRC32(headerCovered)
	if gotCRC != wantCRC {
		return nil, containererr.New(containererr.KindHeaderCrcFailed, op, nil)
	}

	bodySize, err := bytesutil.ReadUint32(r)
	if err != nil {
		return nil, containererr.New(containererr.KindMalformedHeader, op, err)
	}

	bodyOffset := len(buf) - r.Len()
	if bodyOffset+int(bodySize) > len(buf) {
		return nil, containererr.New(containererr.KindUnexpectedEof, op, nil)
	}

	return &Header{
		Flags:        flags,
		Descriptor:   Descriptor{Name: name, Mime: mime},
		OriginalSize: origSize,
		Crypto:       crypto,
		BodySize:     bodySize,
		BodyOffset:   bodyOffset,
	}, nil
}

// Body returns the body_size bytes of buf starting at h.BodyOffset.
func (h *Header) Body(buf []byte) []byte {
	return buf[h.BodyOffset : h.BodyOffset+int(h.BodySize)]
}

func readByte(r *bytes.Reader) (byte, error) {
	b, err := r.ReadByte()
	return b, err
}

func readLengthPrefixedString(r *bytes.Reader) (string, error) {
	n, err := bytesutil.ReadUint16(r)
	if err != nil {
		return "", err
	}
	raw, err := bytesutil.ReadBytes(r, int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", containererr.New(containererr.KindMalformedHeader, "stegfile.readLengthPrefixedString", nil)
	}
	return string(raw), nil
}
