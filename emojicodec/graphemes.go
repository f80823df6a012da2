package emojicodec

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// SplitGraphemes splits s into user-perceived characters using Unicode
// extended-grapheme-cluster segmentation, per spec §4.F — code-point
// splitting would break composite emoji (ZWJ sequences, skin-tone
// modifiers, flags). s is normalized to NFC first, so a caller's custom
// cover text that happens to use a decomposed form of an emoji modifier
// sequence clusters the same way the composed form would.
func SplitGraphemes(s string) []string {
	s = norm.NFC.String(s)
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "" {
			break
		}
		out = append(out, cluster)
	}
	return out
}
