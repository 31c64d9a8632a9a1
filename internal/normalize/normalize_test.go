package normalize

import (
	"testing"
	"unicode/utf8"

	"sitebuild/internal/config"
)

func TestCleanText(t *testing.T) {
	cfg := &config.Config{
		Normalize: config.NormalizeConfig{
			TrimNBSP:       true,
			CollapseSpaces: true,
		},
	}

	normalizer := NewNormalizer(cfg)

	tests := []struct {
		input string
		want  string
	}{
		{"Текст   с NBSP", "Текст с NBSP"},
		{"  Еще текст   с\n\t пробелами  ", "Еще текст с пробелами"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizer.CleanText(tt.input); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanTextDisabled(t *testing.T) {
	normalizer := NewNormalizer(&config.Config{})

	got := normalizer.CleanText(" a b   c ")
	if got != "a b   c" {
		t.Errorf("CleanText() with normalization off = %q", got)
	}
}

func TestTitle(t *testing.T) {
	normalizer := NewNormalizer(config.Default())

	tests := []struct {
		input string
		want  string
	}{
		{"Slotting in EWM | WMexperts", "Slotting in EWM"},
		{"  Plain title ", "Plain title"},
		{" | WMexperts", "Untitled"},
		{"", "Untitled"},
	}

	for _, tt := range tests {
		if got := normalizer.Title(tt.input, "Untitled"); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	input := "Это очень длинный текст который должен быть обрезан по лимиту символов"

	result := Truncate(input, 10)
	if utf8.RuneCountInString(result) != 10 {
		t.Errorf("Truncate result has %d runes, want 10", utf8.RuneCountInString(result))
	}
	if !utf8.ValidString(result) {
		t.Errorf("Truncate cut a multi-byte rune: %q", result)
	}
	if result != "Это очень " {
		t.Errorf("Truncate() = %q", result)
	}

	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Errorf("Truncate with zero limit = %q", got)
	}
}

func TestEllipsize(t *testing.T) {
	tests := []struct {
		input string
		limit int
		want  string
	}{
		{"abcdef", 3, "abc..."},
		{"abc", 3, "abc"},
		{"привет мир", 6, "привет..."},
	}

	for _, tt := range tests {
		if got := Ellipsize(tt.input, tt.limit, "..."); got != tt.want {
			t.Errorf("Ellipsize(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("  one two\nthree\tfour "); got != 4 {
		t.Errorf("WordCount() = %d, want 4", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount(empty) = %d, want 0", got)
	}
}
