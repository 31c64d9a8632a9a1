package page

import (
	"sitebuild/internal/cards"
	"sitebuild/internal/observability"
)

// Updater связывает извлечение, выбор свежей карточки, рендер и патч страницы
type Updater struct {
	extractor *cards.Extractor
	renderer  *cards.Renderer
	patcher   *Patcher
	logger    *observability.Logger
}

func NewUpdater(variant cards.Variant, categories *cards.CategoryTable, indent string, logger *observability.Logger) *Updater {
	extractor := cards.NewExtractor(variant, categories, logger)
	return &Updater{
		extractor: extractor,
		renderer:  cards.NewRenderer(variant, categories, indent),
		patcher:   NewPatcher(extractor, indent),
		logger:    logger,
	}
}

// FeatureLatest помечает самую свежую карточку и ставит её первой.
// Ошибка возможна только cards.ErrRegionNotFound; страница при этом возвращается без изменений.
func (u *Updater) FeatureLatest(page string) (string, error) {
	coll, err := u.extractor.Extract(page)
	if err != nil {
		return page, err
	}
	if len(coll.Cards) == 0 {
		return page, nil
	}

	featured := cards.Feature(coll.Cards)
	if featured[0].Featured {
		u.logger.Debug("Featured card selected",
			"href", featured[0].Href,
			"date", featured[0].DateRaw,
			"cards", len(featured),
		)
	}

	return u.patcher.PatchCollection(page, coll, u.renderer.RenderAll(featured)), nil
}

// Replace заменяет карточки региона заново собранными (без Raw) карточками
func (u *Updater) Replace(page string, fresh []cards.Card) (string, error) {
	return u.patcher.Patch(page, u.renderer.RenderAll(fresh))
}
