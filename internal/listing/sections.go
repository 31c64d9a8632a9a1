package listing

import (
	"fmt"
	"html"
	"io"
	"strings"

	"sitebuild/internal/cards"
	"sitebuild/internal/normalize"
)

// категории, иконка которых оборачивается в span.tool-icon
var toolIconCategories = map[string]bool{
	"enhance": true,
}

// RenderSections пишет разметку секций категорий в порядке таблицы категорий
func (g *Generator) RenderSections(w io.Writer, byCategory map[string][]Article) error {
	for _, key := range g.categories.Keys() {
		if err := g.renderSection(w, key, byCategory[key]); err != nil {
			return fmt.Errorf("failed to render section %s: %w", key, err)
		}
	}
	return nil
}

func (g *Generator) renderSection(w io.Writer, key string, articles []Article) error {
	cat, _ := g.categories.Lookup(key)
	esc := html.EscapeString

	icon := esc(cat.Icon)
	if toolIconCategories[key] {
		icon = `<span class="tool-icon">` + icon + `</span>`
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n<!-- %s SECTION: %d articles -->\n", strings.ToUpper(key), len(articles))
	fmt.Fprintf(&b, "    <section id=\"%s\" class=\"category-section\">\n", esc(key))
	b.WriteString("        <div class=\"category-header\">\n")
	fmt.Fprintf(&b, "            <div class=\"category-icon\">%s</div>\n", icon)
	fmt.Fprintf(&b, "            <h2>%s</h2>\n", esc(cat.Label))
	fmt.Fprintf(&b, "            <span class=\"count\">%d articles</span>\n", len(articles))
	b.WriteString("        </div>\n")
	b.WriteString("        <div class=\"article-grid\">\n")

	for i, a := range articles {
		desc := normalize.Ellipsize(a.Description, g.cfg.Listing.DescriptionLimit, "...")
		fmt.Fprintf(&b, "            <a href=\"%s\" class=\"article-card\">\n", esc(a.RelPath))
		fmt.Fprintf(&b, "                <span class=\"article-number\">%02d</span>\n", i+1)
		fmt.Fprintf(&b, "                <h3>%s</h3>\n", esc(a.Title))
		fmt.Fprintf(&b, "                <p>%s</p>\n", esc(desc))
		b.WriteString("                <div class=\"article-meta\">\n")
		fmt.Fprintf(&b, "                    <span>🕒 %d min</span>\n", a.ReadMinutes)
		fmt.Fprintf(&b, "                    <span>📅 %s</span>\n", cards.FormatDisplay(a.Date))
		b.WriteString("                </div>\n")
		b.WriteString("            </a>\n")

		g.logger.Debug("Listing entry",
			"category", key,
			"num", i+1,
			"file", a.Filename,
			"date", cards.FormatISO(a.Date),
			"title", a.Title,
		)
	}

	b.WriteString("        </div>\n")
	b.WriteString("    </section>\n")

	_, err := io.WriteString(w, b.String())
	return err
}
