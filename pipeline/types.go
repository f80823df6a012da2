// Package pipeline is the orchestrator of spec §4.G: it sequences
// compress → encrypt → frame → embed (and the inverse on reveal),
// manages container flags, and drives the depth/alpha auto-detection
// loop a STEGFILE carrier needs because it advertises none of its own
// embedding parameters.
package pipeline

// PayloadDescriptor is the caller's payload: its name, MIME type, and
// content bytes, per spec §3.
type PayloadDescriptor struct {
	Name  string
	Mime  string
	Bytes []byte
}

// HideImageOptions configures hide_image.
type HideImageOptions struct {
	Encrypt  bool
	Password string
	Compress bool
	Depth    int // 1..4
	UseAlpha bool
	// Iterations is the PBKDF2 work factor. Zero means "use
	// cryptoprim.DefaultIterations". The CLI fills it from
	// config.Defaults.PBKDF2Iterations.
	Iterations uint32
}

// RevealedPayload is what reveal_image hands back on success.
type RevealedPayload struct {
	Name          string
	Mime          string
	Bytes         []byte
	OriginalSize  uint64
	WasEncrypted  bool
	WasCompressed bool
}

// RevealedText is the emoji-mode counterpart of RevealedPayload — the
// emoji carrier has no descriptor fields to recover.
type RevealedText struct {
	Text         string
	WasEncrypted bool
}

// CapacityReport is the result of estimate_capacity.
type CapacityReport struct {
	HeaderSize int
	// PayloadCapacity is the number of raw payload bytes (before
	// compression/encryption charges) a carrier of this size can hold,
	// per the formula in spec §4.E.
	PayloadCapacity int
	// AlphaCapacityGain is how many more bytes the same image would
	// hold at the same depth if use_alpha were true instead of false.
	AlphaCapacityGain int
}
