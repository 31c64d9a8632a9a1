package cards

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sitebuild/internal/observability"
)

// ErrRegionNotFound маркеры региона карточек отсутствуют на странице
var ErrRegionNotFound = errors.New("card region not found")

type Extractor struct {
	variant    Variant
	categories *CategoryTable
	logger     *observability.Logger
}

func NewExtractor(variant Variant, categories *CategoryTable, logger *observability.Logger) *Extractor {
	return &Extractor{
		variant:    variant,
		categories: categories,
		logger:     logger,
	}
}

func (e *Extractor) Variant() Variant {
	return e.variant
}

// Locate возвращает смещения содержимого региона: между концом стартового маркера и началом сентинела
func (e *Extractor) Locate(page string) (int, int, error) {
	if !e.variant.Bounded() {
		return 0, len(page), nil
	}

	start := strings.Index(page, e.variant.RegionStart)
	if start < 0 {
		return 0, 0, fmt.Errorf("%w: start marker %q", ErrRegionNotFound, e.variant.RegionStart)
	}
	contentStart := start + len(e.variant.RegionStart)

	end := strings.Index(page[contentStart:], e.variant.RegionEnd)
	if end < 0 {
		return 0, 0, fmt.Errorf("%w: sentinel %q", ErrRegionNotFound, e.variant.RegionEnd)
	}
	return contentStart, contentStart + end, nil
}

// Extract находит карточки в регионе в порядке документа. Страница не изменяется.
func (e *Extractor) Extract(page string) (*Collection, error) {
	regionStart, regionEnd, err := e.Locate(page)
	if err != nil {
		return nil, err
	}

	coll := &Collection{RegionStart: regionStart, RegionEnd: regionEnd}
	region := page[regionStart:regionEnd]
	lower := asciiLower(region)

	pos := 0
	for {
		idx := findAnchor(lower, pos)
		if idx < 0 {
			break
		}

		tag, ok := parseStartTag(region, idx)
		if !ok {
			e.logger.Warn("Unterminated anchor tag, stopping scan",
				"variant", e.variant.Name,
				"offset", regionStart+idx,
			)
			break
		}

		class, _ := tag.get("class")
		if !hasToken(class.Value, e.variant.ClassToken) {
			pos = tag.End
			continue
		}

		dateAttr, hasDate := tag.get(e.variant.DateAttr)
		href, _ := tag.get("href")
		if !hasDate {
			e.logger.Warn("Card without date attribute skipped",
				"variant", e.variant.Name,
				"href", href.Value,
				"offset", regionStart+idx,
			)
			pos = tag.End
			continue
		}

		end := findAnchorClose(lower, tag.End)
		if end < 0 {
			e.logger.Warn("Card without closing tag, stopping scan",
				"variant", e.variant.Name,
				"href", href.Value,
				"offset", regionStart+idx,
			)
			break
		}

		card := Card{
			Href:           href.Value,
			DateRaw:        dateAttr.Value,
			Raw:            region[idx:end],
			Start:          regionStart + idx,
			End:            regionStart + end,
			markupFeatured: hasToken(class.Value, e.variant.FeaturedToken),
		}
		card.Featured = card.markupFeatured

		if date, err := ParseISODate(dateAttr.Value); err != nil {
			e.logger.Warn("Failed to parse card date",
				"variant", e.variant.Name,
				"href", card.Href,
				"date_raw", card.DateRaw,
				"error", err.Error(),
			)
		} else {
			card.Date = date
			card.DateValid = true
		}

		e.readFields(&card)
		coll.Cards = append(coll.Cards, card)
		pos = end
	}

	return coll, nil
}

// readFields читает вложенные поля фрагмента
func (e *Extractor) readFields(card *Card) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(card.Raw))
	if err != nil {
		e.logger.Warn("Failed to parse card body",
			"href", card.Href,
			"error", err.Error(),
		)
		return
	}

	card.Title = strings.TrimSpace(doc.Find("h3").First().Text())
	card.Description = strings.TrimSpace(doc.Find("p").First().Text())
	card.Tag = strings.TrimSpace(doc.Find("span." + e.variant.TagClass).First().Text())
	card.Icon = strings.TrimSpace(doc.Find(".icon").First().Text())

	meta := strings.TrimSpace(doc.Find(".card-meta span, .article-meta span").First().Text())
	card.ReadingTime = strings.TrimSpace(strings.TrimPrefix(meta, "🕒"))

	tag := card.Tag
	if tag == e.variant.FeaturedLabel {
		tag = ""
	}
	card.Category = e.categories.Resolve(tag, card.Href, card.Icon)
	if card.Category == "" {
		// неизвестный каталог становится собственной категорией
		card.Category = HrefFolder(card.Href)
	}
}
