package pipeline

import (
	"strings"

	"stegocore/stegfile"
)

// mimeFlags derives the informational IS_IMAGE/IS_AUDIO hints from a
// MIME prefix, per spec §3. They never change decoding logic.
func mimeFlags(mime string) stegfile.Flags {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return stegfile.FlagIsImage
	case strings.HasPrefix(mime, "audio/"):
		return stegfile.FlagIsAudio
	default:
		return 0
	}
}
