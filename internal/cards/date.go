package cards

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	isoLayout     = "2006-01-02"
	displayLayout = "Jan 2006"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseISODate парсит дату YYYY-MM-DD (UTC, время 00:00:00); несуществующие месяц/день — ошибка
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	if !isoDateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
	}
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParsePublished принимает YYYY-MM-DD или RFC3339 (article:published_time) и обрезает до дня
func ParsePublished(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := ParseISODate(s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse published date %q", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatISO(t time.Time) string {
	return t.Format(isoLayout)
}

// FormatDisplay формат для карточки, например "May 2025"
func FormatDisplay(t time.Time) string {
	return t.Format(displayLayout)
}
