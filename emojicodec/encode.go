package emojicodec

import "strings"

const (
	zwsp = '​' // bit 0
	zwnj = '‌' // bit 1
)

// bitsToInvisible converts every bit of data (MSB-first per byte) to a
// ZWSP/ZWNJ rune, per spec §4.F step 1.
func bitsToInvisible(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8 * 3) // each rune is 3 bytes in UTF-8
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			if (b>>uint(shift))&1 == 1 {
				sb.WriteRune(zwnj)
			} else {
				sb.WriteRune(zwsp)
			}
		}
	}
	return sb.String()
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Encode hides body inside a string of visible cover graphemes scaffolded
// around invisible ZWSP/ZWNJ characters, per spec §4.F. theme selects
// the built-in cover list, or custom is used when theme is ThemeCustom,
// after normalization and grapheme splitting (falling back to the mixed
// theme when custom yields no graphemes).
func Encode(body []byte, theme Theme, custom []string) (string, error) {
	invisible := bitsToInvisible(body)
	cover := coverList(theme, custom)

	// ZWSP and ZWNJ are both 3-byte UTF-8 sequences, so rune counts and
	// byte offsets into invisible convert by a constant factor.
	const runeBytes = 3
	invisibleRunes := len(body) * 8

	coverCount := ceilDiv(len(body), 16)
	if coverCount < 12 {
		coverCount = 12
	}
	chunkRunes := ceilDiv(invisibleRunes, coverCount)
	chunkBytes := chunkRunes * runeBytes

	var sb strings.Builder
	pos := 0
	for i := 0; i < coverCount; i++ {
		idx, err := randIndex(len(cover))
		if err != nil {
			return "", err
		}
		sb.WriteString(cover[idx])

		end := pos + chunkBytes
		if end > len(invisible) {
			end = len(invisible)
		}
		sb.WriteString(invisible[pos:end])
		pos = end
	}
	if pos < len(invisible) {
		sb.WriteString(invisible[pos:])
	}
	return sb.String(), nil
}
