package cards

import "time"

// Card одна карточка статьи в листинге
type Card struct {
	Href        string
	Date        time.Time
	DateRaw     string
	DateValid   bool
	Title       string
	Description string
	ReadingTime string
	Category    string
	Icon        string
	Tag         string
	Featured    bool

	// Raw исходная разметка фрагмента; пусто у карточек, собранных из метаданных
	Raw string
	// Start/End байтовые смещения фрагмента в странице
	Start int
	End   int

	// состояние, прочитанное из разметки
	markupFeatured bool
}

// MarkupFeatured сообщает, был ли фрагмент помечен как featured в исходной разметке
func (c Card) MarkupFeatured() bool {
	return c.markupFeatured
}

// Variant описывает форму разметки карточек на странице
type Variant struct {
	Name          string `yaml:"name"`
	ClassToken    string `yaml:"class_token"`
	FeaturedToken string `yaml:"featured_token"`
	DateAttr      string `yaml:"date_attr"`
	TagClass      string `yaml:"tag_class"`
	FeaturedLabel string `yaml:"featured_label"`
	// RegionStart/RegionEnd пустые — сканируется весь документ
	RegionStart string `yaml:"region_start"`
	RegionEnd   string `yaml:"region_end"`
}

// Bounded true, если карточки ищутся только внутри маркеров
func (v Variant) Bounded() bool {
	return v.RegionStart != "" && v.RegionEnd != ""
}

func DocumentVariant() Variant {
	return Variant{
		Name:          "document",
		ClassToken:    "card",
		FeaturedToken: "featured",
		DateAttr:      "data-date",
		TagClass:      "tag",
		FeaturedLabel: "📌 Featured",
	}
}

func GridVariant() Variant {
	v := DocumentVariant()
	v.Name = "grid"
	v.RegionStart = `<div class="grid" id="posts-grid">`
	v.RegionEnd = "<!-- VIEW ALL LINK -->"
	return v
}

// Collection результат извлечения: карточки в порядке документа и границы региона
type Collection struct {
	Cards []Card
	// RegionStart/RegionEnd смещения содержимого региона (весь документ для unbounded)
	RegionStart int
	RegionEnd   int
}

// Span диапазон, занятый карточками: от начала первой до конца последней
func (c *Collection) Span() (int, int, bool) {
	if len(c.Cards) == 0 {
		return 0, 0, false
	}
	return c.Cards[0].Start, c.Cards[len(c.Cards)-1].End, true
}
