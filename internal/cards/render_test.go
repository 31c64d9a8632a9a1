package cards

import (
	"strings"
	"testing"
	"time"
)

func newTestRenderer() *Renderer {
	return NewRenderer(GridVariant(), NewCategoryTable(DefaultCategories()), DefaultIndent)
}

func TestRenderRoundTrip(t *testing.T) {
	page := gridPage(
		cardMarkup("blog-posts/enhance/a.html", "2024-01-10", "card", enhanceLabel),
		cardMarkup("blog-posts/around/b.html", "2024-13-40", "card", "Custom label &amp; more"),
		`<a href='x.html' data-extra="1" class=card data-date=2024-02-02>bare</a>`,
	)

	coll, err := newTestExtractor(GridVariant()).Extract(page)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	r := newTestRenderer()
	for i, c := range coll.Cards {
		if got := r.Render(c); got != c.Raw {
			t.Errorf("card %d round trip mismatch:\n got: %q\nwant: %q", i, got, c.Raw)
		}
	}
}

func TestRenderPromoteAndDemote(t *testing.T) {
	page := gridPage(
		cardMarkup("blog-posts/enhance/a.html", "2024-01-10", "card featured", "📌 Featured"),
		cardMarkup("blog-posts/enhance/b.html", "2024-03-05", "card", enhanceLabel),
	)

	coll, err := newTestExtractor(GridVariant()).Extract(page)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !coll.Cards[0].MarkupFeatured() {
		t.Fatalf("first card should be featured in markup")
	}

	featured := Feature(coll.Cards)
	r := newTestRenderer()

	promoted := r.Render(featured[0])
	wantPromoted := cardMarkup("blog-posts/enhance/b.html", "2024-03-05", "card featured", "📌 Featured")
	if promoted != wantPromoted {
		t.Errorf("promoted card:\n got: %q\nwant: %q", promoted, wantPromoted)
	}

	demoted := r.Render(featured[1])
	wantDemoted := cardMarkup("blog-posts/enhance/a.html", "2024-01-10", "card", enhanceLabel)
	if demoted != wantDemoted {
		t.Errorf("demoted card:\n got: %q\nwant: %q", demoted, wantDemoted)
	}

	// повторный рендер уже помеченной карточки ничего не меняет
	again, err := newTestExtractor(GridVariant()).Extract(gridPage(promoted))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := r.Render(Feature(again.Cards)[0]); got != promoted {
		t.Errorf("re-render of featured card changed markup: %q", got)
	}

	// категорию не определить ни по тегу, ни по иконке: подпись берётся из каталога или нейтральная
	unknown := func(href, date, class, tag string) string {
		return `<a href="` + href + `" class="` + class + `" data-date="` + date + `">` +
			`<div class="icon">✨</div><span class="tag">` + tag + `</span></a>`
	}
	tests := []struct {
		name      string
		href      string
		wantLabel string
	}{
		{"unknown folder", "blog-posts/misc/a.html", "misc"},
		{"no folder", "a.html", "Article"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := gridPage(
				unknown(tt.href, "2024-01-10", "card featured", "📌 Featured"),
				unknown("blog-posts/misc/b.html", "2024-05-01", "card", "Something"),
			)
			coll, err := newTestExtractor(GridVariant()).Extract(page)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}

			out := r.RenderAll(Feature(coll.Cards))
			joined := strings.Join(out, "\n")
			if n := strings.Count(joined, "📌 Featured"); n != 1 {
				t.Errorf("rendered %d featured badges, want 1:\n%s", n, joined)
			}

			want := unknown(tt.href, "2024-01-10", "card", tt.wantLabel)
			if out[1] != want {
				t.Errorf("demoted card:\n got: %q\nwant: %q", out[1], want)
			}
		})
	}
}

func TestRenderUnquotedClass(t *testing.T) {
	raw := `<a class=card data-date=2024-02-02 href=x.html><span class=tag>Reveal SAP EWM</span></a>`
	coll, err := newTestExtractor(DocumentVariant()).Extract(raw)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	got := newTestRenderer().Render(Feature(coll.Cards)[0])
	want := `<a class="card featured" data-date=2024-02-02 href=x.html><span class=tag>📌 Featured</span></a>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderFreshEscapes(t *testing.T) {
	c := Card{
		Href:        "blog-posts/work/q.html",
		Date:        time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC),
		DateValid:   true,
		Title:       `Tips & <tricks> for "consultants"`,
		Description: "a < b",
		ReadingTime: "10 min read",
		Category:    "work",
	}

	got := newTestRenderer().Render(c)

	for _, want := range []string{
		`<a href="blog-posts/work/q.html" class="card" data-date="2025-05-14">`,
		`<div class="icon">💼</div>`,
		`<span class="tag">Working as a SAP EWM Consultant</span>`,
		`<h3>Tips &amp; &lt;tricks&gt; for &#34;consultants&#34;</h3>`,
		`<p>a &lt; b</p>`,
		`<span>🕒 10 min read</span>`,
		`<span>📅 May 2025</span>`,
		"\n" + DefaultIndent + "</a>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("fresh render missing %q in:\n%s", want, got)
		}
	}

	c.Featured = true
	got = newTestRenderer().Render(c)
	if !strings.Contains(got, `class="card featured"`) || !strings.Contains(got, `<span class="tag">📌 Featured</span>`) {
		t.Errorf("featured fresh render missing badge:\n%s", got)
	}
}

func TestRenderFreshRoundTrip(t *testing.T) {
	c := Card{
		Href:        "blog-posts/mfs/m.html",
		Date:        time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		DateValid:   true,
		Title:       "MFS",
		Description: "Flow",
		ReadingTime: "8 min read",
		Category:    "mfs",
	}
	r := newTestRenderer()
	fragment := r.Render(c)

	coll, err := newTestExtractor(DocumentVariant()).Extract(fragment)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(coll.Cards) != 1 {
		t.Fatalf("Extract() found %d cards, want 1", len(coll.Cards))
	}

	got := coll.Cards[0]
	if got.Title != "MFS" || got.Description != "Flow" || got.Category != "mfs" || got.ReadingTime != "8 min read" {
		t.Errorf("extracted fields = %+v", got)
	}
	if r.Render(got) != fragment {
		t.Errorf("extract -> render is not identity for a fresh card")
	}
}
