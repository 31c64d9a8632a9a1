package config

import (
	"fmt"
	"path/filepath"
	"time"

	"sitebuild/internal/cards"
)

type Config struct {
	Site           SiteConfig          `yaml:"site"`
	Cards          CardsConfig         `yaml:"cards"`
	Index          IndexConfig         `yaml:"index"`
	Listing        ListingConfig       `yaml:"listing"`
	Migrate        MigrateConfig       `yaml:"migrate"`
	Normalize      NormalizeConfig     `yaml:"normalize"`
	Watch          WatchConfig         `yaml:"watch"`
	Categories     []cards.Category    `yaml:"categories"`
	CategoriesFile string              `yaml:"categories_file"`
	Observability  ObservabilityConfig `yaml:"observability"`
}

type SiteConfig struct {
	Root         string   `yaml:"root"`
	IndexPage    string   `yaml:"index_page"`
	TemplatesDir string   `yaml:"templates_dir"`
	ExcludeDirs  []string `yaml:"exclude_dirs"`
}

type CardsConfig struct {
	ClassToken    string `yaml:"class_token"`
	FeaturedToken string `yaml:"featured_token"`
	DateAttr      string `yaml:"date_attr"`
	TagClass      string `yaml:"tag_class"`
	FeaturedLabel string `yaml:"featured_label"`
	GridStart     string `yaml:"grid_start"`
	GridSentinel  string `yaml:"grid_sentinel"`
	Indent        string `yaml:"indent"`
}

type IndexConfig struct {
	PostsDir           string `yaml:"posts_dir"`
	RecentCount        int    `yaml:"recent_count"`
	TitleSuffix        string `yaml:"title_suffix"`
	DefaultReadingTime string `yaml:"default_reading_time"`
	DescriptionLimit   int    `yaml:"description_limit"`
}

type ListingConfig struct {
	PostsDir         string `yaml:"posts_dir"`
	DescriptionLimit int    `yaml:"description_limit"`
	DefaultDate      string `yaml:"default_date"`
}

type MigrateConfig struct {
	ExportFile         string `yaml:"export_file"`
	TemplateFile       string `yaml:"template_file"`
	OutputDir          string `yaml:"output_dir"`
	ContentPlaceholder string `yaml:"content_placeholder"`
	TitlePlaceholder   string `yaml:"title_placeholder"`
	MaxOutputChars     int    `yaml:"max_output_chars"`
}

type NormalizeConfig struct {
	TrimNBSP       bool `yaml:"trim_nbsp"`
	CollapseSpaces bool `yaml:"collapse_spaces"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type ObservabilityConfig struct {
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
}

// Default значения, совпадающие с разметкой сайта
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Root:         ".",
			IndexPage:    "index.html",
			TemplatesDir: "templates",
			ExcludeDirs:  []string{"templates", "node_modules"},
		},
		Cards: CardsConfig{
			ClassToken:    "card",
			FeaturedToken: "featured",
			DateAttr:      "data-date",
			TagClass:      "tag",
			FeaturedLabel: "📌 Featured",
			GridStart:     `<div class="grid" id="posts-grid">`,
			GridSentinel:  "<!-- VIEW ALL LINK -->",
			Indent:        cards.DefaultIndent,
		},
		Index: IndexConfig{
			PostsDir:           "blog-posts",
			RecentCount:        5,
			TitleSuffix:        " | WMexperts",
			DefaultReadingTime: "10 min read",
			DescriptionLimit:   150,
		},
		Listing: ListingConfig{
			PostsDir:         "blog-posts",
			DescriptionLimit: 120,
			DefaultDate:      "2024-01-01",
		},
		Migrate: MigrateConfig{
			ExportFile:         "migrate/export.xml",
			TemplateFile:       "migrate/article-template.html",
			OutputDir:          "migrate/articles",
			ContentPlaceholder: "{{CONTENT}}",
			TitlePlaceholder:   "{{TITLE}}",
			MaxOutputChars:     500000,
		},
		Normalize: NormalizeConfig{
			TrimNBSP:       true,
			CollapseSpaces: true,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Categories: cards.DefaultCategories(),
		Observability: ObservabilityConfig{
			LogLevel: "info",
		},
	}
}

// Validation
func (c *Config) Validate() error {
	if c.Site.Root == "" {
		return fmt.Errorf("site.root is required")
	}
	if c.Site.IndexPage == "" {
		return fmt.Errorf("site.index_page is required")
	}
	if c.Site.TemplatesDir == "" {
		return fmt.Errorf("site.templates_dir is required")
	}
	if c.Cards.ClassToken == "" {
		return fmt.Errorf("cards.class_token is required")
	}
	if c.Cards.FeaturedToken == "" {
		return fmt.Errorf("cards.featured_token is required")
	}
	if c.Cards.DateAttr == "" {
		return fmt.Errorf("cards.date_attr is required")
	}
	if c.Cards.TagClass == "" {
		return fmt.Errorf("cards.tag_class is required")
	}
	if c.Cards.FeaturedLabel == "" {
		return fmt.Errorf("cards.featured_label is required")
	}
	if c.Cards.GridStart == "" || c.Cards.GridSentinel == "" {
		return fmt.Errorf("cards.grid_start and cards.grid_sentinel are required")
	}
	if c.Index.PostsDir == "" {
		return fmt.Errorf("index.posts_dir is required")
	}
	if c.Index.RecentCount < 0 {
		return fmt.Errorf("index.recent_count must be >= 0")
	}
	if c.Index.DescriptionLimit <= 0 {
		return fmt.Errorf("index.description_limit must be > 0")
	}
	if c.Listing.DescriptionLimit <= 0 {
		return fmt.Errorf("listing.description_limit must be > 0")
	}
	if _, err := cards.ParseISODate(c.Listing.DefaultDate); err != nil {
		return fmt.Errorf("listing.default_date: %w", err)
	}
	if c.Migrate.ContentPlaceholder == "" {
		return fmt.Errorf("migrate.content_placeholder is required")
	}
	if c.Migrate.MaxOutputChars <= 0 {
		return fmt.Errorf("migrate.max_output_chars must be > 0")
	}
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be > 0")
	}
	if err := validateCategories(c.Categories); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if seen[cat.Key] {
			return fmt.Errorf("categories[%d]: duplicate key %q", i, cat.Key)
		}
		seen[cat.Key] = true
	}
	return nil
}

// Getters

func (c *Config) DocumentVariant() cards.Variant {
	return cards.Variant{
		Name:          "document",
		ClassToken:    c.Cards.ClassToken,
		FeaturedToken: c.Cards.FeaturedToken,
		DateAttr:      c.Cards.DateAttr,
		TagClass:      c.Cards.TagClass,
		FeaturedLabel: c.Cards.FeaturedLabel,
	}
}

func (c *Config) GridVariant() cards.Variant {
	v := c.DocumentVariant()
	v.Name = "grid"
	v.RegionStart = c.Cards.GridStart
	v.RegionEnd = c.Cards.GridSentinel
	return v
}

func (c *Config) CategoryTable() *cards.CategoryTable {
	return cards.NewCategoryTable(c.Categories)
}

// Path разрешает путь относительно корня сайта
func (c *Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Site.Root, rel)
}

func (c *Config) TemplatePath(name string) string {
	return filepath.Join(c.Path(c.Site.TemplatesDir), name+".html")
}

func (c *Config) IndexPagePath() string {
	return c.Path(c.Site.IndexPage)
}
