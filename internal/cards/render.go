package cards

import (
	"html"
	"strings"
)

const DefaultIndent = "                "

// Renderer сериализует карточку обратно в разметку той же формы
type Renderer struct {
	variant    Variant
	categories *CategoryTable
	indent     string
}

func NewRenderer(variant Variant, categories *CategoryTable, indent string) *Renderer {
	return &Renderer{
		variant:    variant,
		categories: categories,
		indent:     indent,
	}
}

// Render для извлечённой карточки правит только список классов и содержимое тега;
// нетронутая карточка возвращается байт-в-байт.
func (r *Renderer) Render(c Card) string {
	if c.Raw == "" {
		return r.renderFresh(c)
	}

	out := r.syncClass(c.Raw, c.Featured)
	return r.syncTag(out, c)
}

func (r *Renderer) RenderAll(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, r.Render(c))
	}
	return out
}

func (r *Renderer) syncClass(raw string, featured bool) string {
	tag, ok := parseStartTag(raw, 0)
	if !ok {
		return raw
	}
	class, ok := tag.get("class")
	if !ok || hasToken(class.Value, r.variant.FeaturedToken) == featured {
		return raw
	}

	value := removeToken(class.Value, r.variant.FeaturedToken)
	if featured {
		value = addToken(class.Value, r.variant.FeaturedToken)
	}
	if class.Quote == 0 {
		value = `"` + value + `"`
	}
	return raw[:class.ValueStart] + value + raw[class.ValueEnd:]
}

func (r *Renderer) syncTag(raw string, c Card) string {
	start, end, ok := r.findTagContent(raw)
	if !ok {
		return raw
	}

	current := strings.TrimSpace(html.UnescapeString(raw[start:end]))
	badge := r.variant.FeaturedLabel

	var want string
	switch {
	case c.Featured && current != badge:
		want = badge
	case !c.Featured && current == badge:
		want = r.categories.Label(c.Category)
	default:
		return raw
	}
	return raw[:start] + html.EscapeString(want) + raw[end:]
}

// findTagContent ищет содержимое первого <span> с классом тега
func (r *Renderer) findTagContent(raw string) (int, int, bool) {
	lower := asciiLower(raw)
	pos := 0
	for {
		i := strings.Index(lower[pos:], "<span")
		if i < 0 {
			return 0, 0, false
		}
		i += pos
		tag, ok := parseStartTag(raw, i)
		if !ok {
			return 0, 0, false
		}
		class, _ := tag.get("class")
		if hasToken(class.Value, r.variant.TagClass) {
			end := strings.Index(lower[tag.End:], "</span")
			if end < 0 {
				return 0, 0, false
			}
			return tag.End, tag.End + end, true
		}
		pos = tag.End
	}
}

func (r *Renderer) renderFresh(c Card) string {
	cat, _ := r.categories.Lookup(c.Category)
	icon := c.Icon
	if icon == "" {
		icon = cat.Icon
	}
	label := c.Tag
	if label == "" {
		label = cat.Label
	}

	class := r.variant.ClassToken
	if c.Featured {
		class += " " + r.variant.FeaturedToken
		label = r.variant.FeaturedLabel
	}

	date := c.DateRaw
	display := ""
	if c.DateValid {
		date = FormatISO(c.Date)
		display = FormatDisplay(c.Date)
	}

	esc := html.EscapeString
	lines := []string{
		`<a href="` + esc(c.Href) + `" class="` + esc(class) + `" ` + r.variant.DateAttr + `="` + esc(date) + `">`,
		`    <div class="card-header">`,
		`        <div class="icon">` + esc(icon) + `</div>`,
		`        <span class="` + r.variant.TagClass + `">` + esc(label) + `</span>`,
		`    </div>`,
		`    <h3>` + esc(c.Title) + `</h3>`,
		`    <p>` + esc(c.Description) + `</p>`,
		`    <div class="card-meta">`,
		`        <span>🕒 ` + esc(c.ReadingTime) + `</span>`,
		`        <span>📅 ` + display + `</span>`,
		`    </div>`,
		`</a>`,
	}
	return strings.Join(lines, "\n"+r.indent)
}
