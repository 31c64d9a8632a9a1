package normalize

import (
	"strings"
	"unicode/utf8"

	"sitebuild/internal/config"
)

type Normalizer struct {
	cfg *config.Config
}

func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// CleanText заменяет NBSP и схлопывает пробельные последовательности
func (n *Normalizer) CleanText(text string) string {
	if n.cfg.Normalize.TrimNBSP {
		text = strings.ReplaceAll(text, "\u00A0", " ")
	}
	if n.cfg.Normalize.CollapseSpaces {
		text = strings.Join(strings.Fields(text), " ")
	}
	return strings.TrimSpace(text)
}

// Title убирает суффикс сайта, например " | WMexperts"
func (n *Normalizer) Title(title, fallback string) string {
	if suffix := n.cfg.Index.TitleSuffix; suffix != "" {
		title = strings.ReplaceAll(title, suffix, "")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return fallback
	}
	return title
}

// Truncate обрезает до limit символов (не байт)
func Truncate(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit])
}

// Ellipsize обрезает до limit символов и добавляет suffix, если текст был длиннее
func Ellipsize(text string, limit int, suffix string) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	return Truncate(text, limit) + suffix
}

// WordCount грубая оценка числа слов
func WordCount(text string) int {
	return len(strings.Fields(text))
}
