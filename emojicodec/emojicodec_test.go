package emojicodec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"stegocore/internal/containererr"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, theme := range []Theme{ThemeAnimals, ThemeFood, ThemeTravel, ThemeMixed} {
		msg := []byte("hi there, hidden friend")
		encoded, err := Encode(msg, theme, nil)
		if err != nil {
			t.Fatalf("theme %s: Encode: %v", theme, err)
		}
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("theme %s: Decode: %v", theme, err)
		}
		if !bytes.Equal(decoded, msg) {
			t.Errorf("theme %s: round trip = %q, want %q", theme, decoded, msg)
		}
	}
}

func TestEncodeProducesExactInvisibleCountForShortMessage(t *testing.T) {
	// spec S4: hiding "hi" with the mixed theme must produce exactly 16
	// zero-width characters (2 bytes * 8 bits).
	encoded, err := Encode([]byte("hi"), ThemeMixed, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	count := 0
	for _, r := range encoded {
		if r == zwsp || r == zwnj {
			count++
		}
	}
	if count != 16 {
		t.Errorf("invisible char count = %d, want 16", count)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(decoded) != "hi" {
		t.Errorf("decoded = %q, want %q", decoded, "hi")
	}
}

func TestDecodeIgnoresInterleavedNoise(t *testing.T) {
	encoded, err := Encode([]byte("ok"), ThemeMixed, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	noisy := strings.ReplaceAll(encoded, "", "x") + " extra trailing text 😀"
	decoded, err := Decode(noisy)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(decoded) != "ok" {
		t.Errorf("decoded = %q, want %q", decoded, "ok")
	}
}

func TestDecodeEmptyIsNoHiddenData(t *testing.T) {
	_, err := Decode("just an emoji 😀 and nothing else")
	if !errors.Is(err, containererr.ErrNoHiddenData) {
		t.Errorf("err = %v, want NoHiddenData", err)
	}
}

func TestCustomThemeFallsBackToMixedWhenEmpty(t *testing.T) {
	list := coverList(ThemeCustom, nil)
	if len(list) != len(mixedTheme) {
		t.Errorf("empty custom list did not fall back to mixed theme")
	}
}

func TestCustomThemeUsesCallerList(t *testing.T) {
	custom := []string{"🧪"}
	encoded, err := Encode([]byte("x"), ThemeCustom, custom)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(encoded, "🧪") {
		t.Error("expected the custom grapheme to appear as cover")
	}
}

func TestSplitGraphemesHandlesZWJSequence(t *testing.T) {
	// family emoji: man + ZWJ + woman + ZWJ + girl, one grapheme cluster.
	family := "👨‍👩‍👧"
	got := SplitGraphemes(family)
	if len(got) != 1 {
		t.Errorf("SplitGraphemes(%q) = %d clusters, want 1", family, len(got))
	}
}
