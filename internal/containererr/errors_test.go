package containererr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsThroughWrapping(t *testing.T) {
	base := New(KindAuthFailed, "pipeline.RevealImage", nil)
	wrapped := fmt.Errorf("reveal failed: %w", base)
	wrapped = fmt.Errorf("outer: %w", wrapped)

	if !errors.Is(wrapped, ErrAuthFailed) {
		t.Error("expected errors.Is to find ErrAuthFailed through wrapping")
	}
	if errors.Is(wrapped, ErrBadMagic) {
		t.Error("expected errors.Is to not match unrelated sentinel")
	}
}

func TestKindString(t *testing.T) {
	if KindBadMagic.String() != "BadMagic" {
		t.Errorf("got %q", KindBadMagic.String())
	}
}
