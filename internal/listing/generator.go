package listing

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"sitebuild/internal/cards"
	"sitebuild/internal/config"
	"sitebuild/internal/normalize"
	"sitebuild/internal/observability"
	"sitebuild/internal/storage"
)

// Article запись листинга категории
type Article struct {
	Category    string
	Filename    string
	RelPath     string
	Title       string
	Headline    string
	Description string
	Date        time.Time
	ReadMinutes int
}

type Generator struct {
	cfg        *config.Config
	categories *cards.CategoryTable
	normalizer *normalize.Normalizer
	store      storage.Repository
	logger     *observability.Logger
}

func NewGenerator(
	cfg *config.Config,
	categories *cards.CategoryTable,
	store storage.Repository,
	logger *observability.Logger,
) *Generator {
	return &Generator{
		cfg:        cfg,
		categories: categories,
		normalizer: normalize.NewNormalizer(cfg),
		store:      store,
		logger:     logger,
	}
}

// CollectArticles собирает статьи по папкам категорий, внутри категории — по возрастанию даты
func (g *Generator) CollectArticles() (map[string][]Article, error) {
	defaultDate, err := cards.ParseISODate(g.cfg.Listing.DefaultDate)
	if err != nil {
		return nil, fmt.Errorf("listing.default_date: %w", err)
	}

	byCategory := make(map[string][]Article)
	for _, key := range g.categories.Keys() {
		dir := filepath.Join(g.cfg.Path(g.cfg.Listing.PostsDir), key)
		exists, err := g.store.Exists(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
		}
		if !exists {
			byCategory[key] = nil
			continue
		}

		files, err := g.store.Discover(dir, nil)
		if err != nil {
			return nil, err
		}

		articles := make([]Article, 0, len(files))
		for _, path := range files {
			content, err := g.store.Read(path)
			if err != nil {
				g.logger.Error("Failed to read article", "path", path, "error", err.Error())
				continue
			}
			meta, err := ExtractMetadata(content)
			if err != nil {
				g.logger.Error("Failed to extract metadata", "path", path, "error", err.Error())
				continue
			}
			articles = append(articles, g.article(key, path, meta, defaultDate))
		}

		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Date.Before(articles[j].Date)
		})
		byCategory[key] = articles
	}

	return byCategory, nil
}

func (g *Generator) article(category, path string, meta *ArticleMeta, defaultDate time.Time) Article {
	headline := meta.Headline
	if headline == "" {
		headline = "Article"
	}
	title := meta.H1
	if title == "" {
		title = headline
	}

	date := defaultDate
	if meta.DateValid {
		date = meta.Published
	} else {
		g.logger.Warn("Article without valid publish date, using default",
			"path", path,
			"date_raw", meta.PublishedRaw,
			"default", cards.FormatISO(defaultDate),
		)
	}

	filename := filepath.Base(path)
	return Article{
		Category:    category,
		Filename:    filename,
		RelPath:     filepath.ToSlash(filepath.Join(g.cfg.Listing.PostsDir, category, filename)),
		Title:       title,
		Headline:    headline,
		Description: meta.Description,
		Date:        date,
		ReadMinutes: ReadingMinutes(meta.WordCount),
	}
}

// CollectPosts собирает карточки всех постов для главной страницы.
// Посты без даты пропускаются с предупреждением.
func (g *Generator) CollectPosts() ([]cards.Card, error) {
	root := g.cfg.Path(g.cfg.Index.PostsDir)
	files, err := g.store.Discover(root, nil)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("blog posts directory not found: %s", root)
		}
		return nil, err
	}

	g.logger.Info("Scanning blog posts", "dir", root, "files", len(files))

	var posts []cards.Card
	for _, path := range files {
		content, err := g.store.Read(path)
		if err != nil {
			g.logger.Error("Failed to read post", "path", path, "error", err.Error())
			continue
		}
		meta, err := ExtractMetadata(content)
		if err != nil {
			g.logger.Error("Failed to extract metadata", "path", path, "error", err.Error())
			continue
		}
		if meta.PublishedRaw == "" {
			g.logger.Warn("No publication date found", "path", path)
			continue
		}
		if !meta.DateValid {
			g.logger.Warn("Invalid date format", "path", path, "date_raw", meta.PublishedRaw)
			continue
		}

		posts = append(posts, g.post(path, meta))
	}

	return posts, nil
}

func (g *Generator) post(path string, meta *ArticleMeta) cards.Card {
	category := filepath.Base(filepath.Dir(path))
	cat, _ := g.categories.Lookup(category)

	rel, err := filepath.Rel(g.cfg.Site.Root, path)
	if err != nil {
		rel = path
	}

	readingTime := meta.ReadingTime
	if readingTime == "" {
		readingTime = g.cfg.Index.DefaultReadingTime
	}

	return cards.Card{
		Href:        filepath.ToSlash(rel),
		Date:        meta.Published,
		DateRaw:     cards.FormatISO(meta.Published),
		DateValid:   true,
		Title:       g.normalizer.Title(meta.OGTitle, "Untitled"),
		Description: normalize.Truncate(g.normalizer.CleanText(meta.OGDescription), g.cfg.Index.DescriptionLimit),
		ReadingTime: readingTime,
		Category:    category,
		Icon:        cat.Icon,
		Tag:         cat.Label,
	}
}

// SelectRecent сортирует по убыванию даты и оставляет самый свежий плюс count следующих
func SelectRecent(posts []cards.Card, count int) []cards.Card {
	sorted := make([]cards.Card, len(posts))
	copy(sorted, posts)
	cards.SortNewestFirst(sorted)
	if len(sorted) > count+1 {
		sorted = sorted[:count+1]
	}
	return cards.Feature(sorted)
}

// TitleSummary для логов
func TitleSummary(list []cards.Card) string {
	titles := make([]string, 0, len(list))
	for _, c := range list {
		titles = append(titles, c.Title)
	}
	return strings.Join(titles, "; ")
}
