// Package containererr defines the error taxonomy shared by the stegfile
// and emoj framers, the image and emoji codecs, and the pipeline
// orchestrator: one sentinel per failure kind, no overlap.
package containererr

import "errors"

// Kind identifies which taxonomy entry a failure belongs to.
type Kind int

const (
	// KindBadMagic: carrier does not begin with the expected magic bytes.
	KindBadMagic Kind = iota
	// KindLegacyFormat: carrier begins with the legacy "STEG" marker.
	KindLegacyFormat
	// KindUnsupportedVersion: version byte is not recognized.
	KindUnsupportedVersion
	// KindMalformedHeader: a length field overruns the buffer, or UTF-8 is invalid.
	KindMalformedHeader
	// KindUnknownKdf: kdf_id is not 0x01.
	KindUnknownKdf
	// KindHeaderCrcFailed: the STEGFILE header CRC does not match.
	KindHeaderCrcFailed
	// KindPayloadCorrupt: the EMOJ body CRC does not match.
	KindPayloadCorrupt
	// KindAuthFailed: AEAD open was rejected.
	KindAuthFailed
	// KindCapacityExceeded: framed blob exceeds carrier capacity.
	KindCapacityExceeded
	// KindMissingPassword: encrypted carrier revealed without a password.
	KindMissingPassword
	// KindMissingCryptoParams: hide requested encryption without salt/iv/iterations.
	KindMissingCryptoParams
	// KindNoHiddenData: EMOJ decode found zero invisible characters.
	KindNoHiddenData
	// KindUnexpectedEof: pixel stream exhausted before the framer was satisfied.
	KindUnexpectedEof
)

func (k Kind) String() string {
	switch k {
	case KindBadMagic:
		return "BadMagic"
	case KindLegacyFormat:
		return "LegacyFormat"
	case KindUnsupportedVersion:
		return "UnsupportedVersion"
	case KindMalformedHeader:
		return "MalformedHeader"
	case KindUnknownKdf:
		return "UnknownKdf"
	case KindHeaderCrcFailed:
		return "HeaderCrcFailed"
	case KindPayloadCorrupt:
		return "PayloadCorrupt"
	case KindAuthFailed:
		return "AuthFailed"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindMissingPassword:
		return "MissingPassword"
	case KindMissingCryptoParams:
		return "MissingCryptoParams"
	case KindNoHiddenData:
		return "NoHiddenData"
	case KindUnexpectedEof:
		return "UnexpectedEof"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type every taxonomy entry is surfaced as. Op
// names the operation that failed ("stegfile.Parse", "imgcodec.Embed", ...).
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, containererr.ErrAuthFailed) match regardless of how
// many times the error has been wrapped with fmt.Errorf("...: %w", err) or
// errors.Wrap along the way.
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]
	return ok && target == sentinel
}

// New builds an *Error for kind, tagging it with the failing operation.
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Sentinels, one per Kind, for errors.Is comparisons against bare values
// (e.g. from a switch that doesn't have an *Error in hand).
var (
	ErrBadMagic             = errors.New("BadMagic")
	ErrLegacyFormat         = errors.New("LegacyFormat")
	ErrUnsupportedVersion   = errors.New("UnsupportedVersion")
	ErrMalformedHeader      = errors.New("MalformedHeader")
	ErrUnknownKdf           = errors.New("UnknownKdf")
	ErrHeaderCrcFailed      = errors.New("HeaderCrcFailed")
	ErrPayloadCorrupt       = errors.New("PayloadCorrupt")
	ErrAuthFailed           = errors.New("AuthFailed")
	ErrCapacityExceeded     = errors.New("CapacityExceeded")
	ErrMissingPassword      = errors.New("MissingPassword")
	ErrMissingCryptoParams  = errors.New("MissingCryptoParams")
	ErrNoHiddenData         = errors.New("NoHiddenData")
	ErrUnexpectedEof        = errors.New("UnexpectedEof")
)

var sentinels = map[Kind]error{
	KindBadMagic:            ErrBadMagic,
	KindLegacyFormat:        ErrLegacyFormat,
	KindUnsupportedVersion:  ErrUnsupportedVersion,
	KindMalformedHeader:     ErrMalformedHeader,
	KindUnknownKdf:          ErrUnknownKdf,
	KindHeaderCrcFailed:     ErrHeaderCrcFailed,
	KindPayloadCorrupt:      ErrPayloadCorrupt,
	KindAuthFailed:          ErrAuthFailed,
	KindCapacityExceeded:    ErrCapacityExceeded,
	KindMissingPassword:     ErrMissingPassword,
	KindMissingCryptoParams: ErrMissingCryptoParams,
	KindNoHiddenData:        ErrNoHiddenData,
	KindUnexpectedEof:       ErrUnexpectedEof,
}
