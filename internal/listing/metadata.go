package listing

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"sitebuild/internal/cards"
	"sitebuild/internal/normalize"
)

var headlineRe = regexp.MustCompile(`"headline"\s*:\s*"([^"]+)"`)

// ArticleMeta метаданные из шапки статьи
type ArticleMeta struct {
	Description   string
	OGTitle       string
	OGDescription string
	Headline      string
	H1            string
	PublishedRaw  string
	Published     time.Time
	DateValid     bool
	ReadingTime   string
	WordCount     int
}

// ExtractMetadata читает meta-теги, JSON-LD headline и первый h1
func ExtractMetadata(html string) (*ArticleMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := &ArticleMeta{
		Description:   metaContent(doc, `meta[name="description"]`),
		OGTitle:       metaContent(doc, `meta[property="og:title"]`),
		OGDescription: metaContent(doc, `meta[property="og:description"]`),
		PublishedRaw:  metaContent(doc, `meta[property="article:published_time"]`),
		ReadingTime:   metaContent(doc, `meta[name="reading-time"]`),
		H1:            strings.TrimSpace(doc.Find("h1").First().Text()),
		WordCount:     normalize.WordCount(html),
	}

	if m := headlineRe.FindStringSubmatch(html); m != nil {
		meta.Headline = m[1]
	}

	if meta.PublishedRaw != "" {
		if t, err := parsePublished(meta.PublishedRaw); err == nil {
			meta.Published = t
			meta.DateValid = true
		}
	}

	return meta, nil
}

// ReadingMinutes оценка времени чтения по числу слов
func ReadingMinutes(words int) int {
	switch {
	case words < 1500:
		return 8
	case words < 2000:
		return 10
	case words < 2500:
		return 12
	case words < 3000:
		return 14
	default:
		return 16
	}
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func parsePublished(raw string) (time.Time, error) {
	t, err := cards.ParsePublished(raw)
	if err == nil {
		return t, nil
	}
	// "2024-05-01T10:00:00" без зоны
	if len(raw) > 10 && raw[10] == 'T' {
		return cards.ParseISODate(raw[:10])
	}
	return time.Time{}, err
}
