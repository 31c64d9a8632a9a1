package page

import (
	"strings"

	"sitebuild/internal/cards"
)

// Patcher заменяет карточки внутри региона, не трогая остальной текст страницы
type Patcher struct {
	extractor *cards.Extractor
	indent    string
}

func NewPatcher(extractor *cards.Extractor, indent string) *Patcher {
	return &Patcher{extractor: extractor, indent: indent}
}

// Patch подставляет fragments на место карточек региона.
// При равном числе фрагментов и карточек промежутки между карточками сохраняются как есть;
// иначе диапазон карточек заменяется целиком. Регион не найден — ошибка и страница без изменений.
func (p *Patcher) Patch(page string, fragments []string) (string, error) {
	coll, err := p.extractor.Extract(page)
	if err != nil {
		return page, err
	}
	return p.PatchCollection(page, coll, fragments), nil
}

// PatchCollection то же, что Patch, для уже извлечённой коллекции
func (p *Patcher) PatchCollection(page string, coll *cards.Collection, fragments []string) string {
	if len(fragments) == 0 {
		return page
	}

	var b strings.Builder
	b.Grow(len(page))

	first, last, ok := coll.Span()
	if !ok {
		// пустой регион: вставляем в начало с отступом
		b.WriteString(page[:coll.RegionStart])
		sep := "\n" + p.indent
		b.WriteString(sep)
		b.WriteString(strings.Join(fragments, sep))
		b.WriteString(page[coll.RegionStart:])
		return b.String()
	}

	b.WriteString(page[:first])
	if len(fragments) == len(coll.Cards) {
		for i, frag := range fragments {
			b.WriteString(frag)
			if i+1 < len(coll.Cards) {
				b.WriteString(page[coll.Cards[i].End:coll.Cards[i+1].Start])
			}
		}
	} else {
		b.WriteString(strings.Join(fragments, p.separator(page, coll)))
	}
	b.WriteString(page[last:])
	return b.String()
}

// separator промежуток между первыми двумя карточками или перевод строки с отступом
func (p *Patcher) separator(page string, coll *cards.Collection) string {
	if len(coll.Cards) >= 2 {
		gap := page[coll.Cards[0].End:coll.Cards[1].Start]
		if strings.TrimSpace(gap) == "" {
			return gap
		}
	}
	return "\n" + p.indent
}
