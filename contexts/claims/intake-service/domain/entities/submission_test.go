package entities

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateDescriptionShortTextUntouched(t *testing.T) {
	text := strings.Repeat("é", DescriptionLimit)
	if got := TruncateDescription(text); got != text {
		t.Fatalf("text within the limit must pass through unchanged, got %d runes", utf8.RuneCountInString(got))
	}
}

func TestTruncateDescriptionCountsRunes(t *testing.T) {
	// "é" is two bytes, so the byte length of the input exceeds the
	// limit well before the rune count does.
	text := strings.Repeat("x", DescriptionLimit-1) + strings.Repeat("é", 10)

	got := TruncateDescription(text)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated description is invalid UTF-8: %q", got[len(got)-5:])
	}
	if n := utf8.RuneCountInString(got); n != DescriptionLimit {
		t.Fatalf("truncated to %d runes, want %d", n, DescriptionLimit)
	}
	if !strings.HasSuffix(got, "é") {
		t.Fatalf("expected the boundary rune to survive intact, got tail %q", got[len(got)-3:])
	}
}
