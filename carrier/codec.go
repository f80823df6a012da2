// Package carrier adapts external image/text containers to the forms
// the codecs in imgcodec and emojicodec operate on, per spec §6's
// "collaborators the core consumes from": a raster carrier source/sink,
// and (for emoji mode) a text I/O collaborator this package only
// declares the shape of — no clipboard implementation ships here.
package carrier

import (
	"io"

	"stegocore/imgcodec"
)

// ImageDecoder produces an owned *imgcodec.Image from whatever encoded
// container the host chose (PNG, BMP, ...).
type ImageDecoder func(r io.Reader) (*imgcodec.Image, error)

// ImageEncoder writes img back out as a lossless encoded image. A
// conformant encoder must not quantize and must preserve every low bit
// of every channel, including alpha when the image carries one.
type ImageEncoder func(w io.Writer, img *imgcodec.Image) error

// TextSource supplies caller text to reveal_emoji — e.g. a clipboard
// read, a file read, or a literal string. The core only depends on this
// function shape; no implementation ships with this package.
type TextSource func() (string, error)

// TextSink delivers the string hide_emoji produced back to the host —
// e.g. a clipboard write. Same story: shape only, no implementation.
type TextSink func(text string) error
