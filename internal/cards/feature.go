package cards

import "sort"

// Latest индекс карточки с максимальной валидной датой; при равенстве — первая по порядку
func Latest(cards []Card) (int, bool) {
	latest := -1
	for i, c := range cards {
		if !c.DateValid {
			continue
		}
		if latest < 0 || c.Date.After(cards[latest].Date) {
			latest = i
		}
	}
	return latest, latest >= 0
}

// Feature переносит самую свежую карточку в начало и помечает её featured.
// Остальные сохраняют относительный порядок и снимают отметку.
// Без валидных дат возвращается копия входа.
func Feature(cards []Card) []Card {
	out := make([]Card, 0, len(cards))

	latest, ok := Latest(cards)
	if !ok {
		return append(out, cards...)
	}

	top := cards[latest]
	top.Featured = true
	out = append(out, top)

	for i, c := range cards {
		if i == latest {
			continue
		}
		c.Featured = false
		out = append(out, c)
	}
	return out
}

// SortNewestFirst стабильная сортировка по дате по убыванию; невалидные даты в конце
func SortNewestFirst(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.DateValid != b.DateValid {
			return a.DateValid
		}
		return a.Date.After(b.Date)
	})
}
