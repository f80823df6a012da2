// Package emojicodec implements the grapheme codec of spec §4.F: mapping
// bytes to invisible zero-width characters, interleaving them with
// visible emoji cover graphemes, and recovering the bitstream from
// arbitrary text.
package emojicodec

// Theme selects which built-in cover-grapheme list Encode draws from.
type Theme string

const (
	ThemeAnimals Theme = "animals"
	ThemeFood    Theme = "food"
	ThemeTravel  Theme = "travel"
	// ThemeMixed is the superset of all built-in lists.
	ThemeMixed Theme = "mixed"
	// ThemeCustom signals the caller's own grapheme list should be used;
	// an empty custom list falls back to ThemeMixed per spec §4.F.
	ThemeCustom Theme = "custom"
)

var animalsTheme = []string{
	"🐶", "🐱", "🦊", "🐻", "🐼", "🐨", "🦁", "🐯", "🐵", "🐸", "🐷", "🐙",
}

var foodTheme = []string{
	"🍎", "🍕", "🍣", "🍩", "🥐", "🍇", "🌽", "🍪", "🥕", "🍉", "🍔", "🍰",
}

var travelTheme = []string{
	"✈️", "🚗", "🚀", "🗺️", "🏝️", "🚤", "🎒", "🧭", "🚢", "🛤️", "🗽", "⛺",
}

var mixedTheme = func() []string {
	all := make([]string, 0, len(animalsTheme)+len(foodTheme)+len(travelTheme))
	all = append(all, animalsTheme...)
	all = append(all, foodTheme...)
	all = append(all, travelTheme...)
	return all
}()

func builtinGraphemes(theme Theme) []string {
	switch theme {
	case ThemeAnimals:
		return animalsTheme
	case ThemeFood:
		return foodTheme
	case ThemeTravel:
		return travelTheme
	default:
		return mixedTheme
	}
}

// coverList resolves the grapheme list Encode should draw from: the
// caller's custom list, NFC-normalized and split into grapheme clusters
// by SplitGraphemes, when theme is ThemeCustom and that yields at least
// one grapheme; the mixed theme when theme is ThemeCustom and it yields
// none; and the matching built-in list otherwise.
func coverList(theme Theme, custom []string) []string {
	if theme == ThemeCustom {
		var graphemes []string
		for _, s := range custom {
			graphemes = append(graphemes, SplitGraphemes(s)...)
		}
		if len(graphemes) == 0 {
			return mixedTheme
		}
		return graphemes
	}
	return builtinGraphemes(theme)
}
