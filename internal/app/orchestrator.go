package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"sitebuild/internal/cards"
	"sitebuild/internal/checksum"
	"sitebuild/internal/config"
	"sitebuild/internal/listing"
	"sitebuild/internal/migrate"
	"sitebuild/internal/observability"
	"sitebuild/internal/page"
	"sitebuild/internal/storage"
	"sitebuild/internal/watch"
)

// ErrMissingTemplate обязательный шаблон отсутствует — запуск прерывается целиком
var ErrMissingTemplate = errors.New("template not found")

type Orchestrator struct {
	cfg         *config.Config
	logger      *observability.Logger
	store       storage.Repository
	hasher      *checksum.Generator
	docUpdater  *page.Updater
	gridUpdater *page.Updater
	generator   *listing.Generator
	migrator    *migrate.Migrator
}

func NewOrchestrator(
	cfg *config.Config,
	logger *observability.Logger,
	store storage.Repository,
	hasher *checksum.Generator,
) *Orchestrator {
	categories := cfg.CategoryTable()
	return &Orchestrator{
		cfg:         cfg,
		logger:      logger,
		store:       store,
		hasher:      hasher,
		docUpdater:  page.NewUpdater(cfg.DocumentVariant(), categories, cfg.Cards.Indent, logger),
		gridUpdater: page.NewUpdater(cfg.GridVariant(), categories, cfg.Cards.Indent, logger),
		generator:   listing.NewGenerator(cfg, categories, store, logger),
		migrator:    migrate.NewMigrator(cfg, store, logger),
	}
}

type BuildStats struct {
	Processed int
	Skipped   int
	Unchanged int
	Missing   int
	Errors    int
}

type IndexStats struct {
	Posts       int
	Featured    string
	Recent      int
	RegionFound bool
	Written     bool
}

type fileOutcome int

const (
	outcomeProcessed fileOutcome = iota
	outcomeUnchanged
	outcomeSkipped
)

// LoadTemplate читает шаблон из каталога шаблонов; отсутствие файла — ErrMissingTemplate
func (o *Orchestrator) LoadTemplate(name string) (string, error) {
	return o.loadRequired(o.cfg.TemplatePath(name))
}

func (o *Orchestrator) loadRequired(path string) (string, error) {
	content, err := o.store.Read(path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrMissingTemplate, path)
		}
		return "", err
	}
	return content, nil
}

// Build подставляет шапку/подвал и обновляет featured карточку на главной.
// Пустой paths — обход всех *.html под корнем сайта.
func (o *Orchestrator) Build(ctx context.Context, paths []string) (*BuildStats, error) {
	header, err := o.LoadTemplate("header")
	if err != nil {
		return nil, err
	}
	footer, err := o.LoadTemplate("footer")
	if err != nil {
		return nil, err
	}
	o.logger.Info("Templates loaded", "dir", o.cfg.Path(o.cfg.Site.TemplatesDir))

	injector := page.NewInjector(header, footer)

	files := paths
	if len(files) == 0 {
		files, err = o.store.Discover(o.cfg.Site.Root, o.cfg.Site.ExcludeDirs)
		if err != nil {
			return nil, err
		}
	}

	o.logger.Info("Starting build", "files", len(files))

	stats := &BuildStats{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("Build interrupted", "remaining_from", path)
			return stats, err
		}

		exists, err := o.store.Exists(path)
		if err != nil || !exists {
			o.logger.Warn("File not found", "path", path)
			stats.Missing++
			continue
		}

		outcome, err := o.processFile(path, injector)
		if err != nil {
			o.logger.Error("Error processing file",
				"path", path,
				"error", err.Error(),
			)
			stats.Errors++
			continue
		}

		switch outcome {
		case outcomeProcessed:
			o.logger.Info("Processed", "path", path)
			stats.Processed++
		case outcomeUnchanged:
			o.logger.Info("Processed (unchanged)", "path", path)
			stats.Processed++
			stats.Unchanged++
		case outcomeSkipped:
			o.logger.Info("Skipped (no placeholders)", "path", path)
			stats.Skipped++
		}
	}

	o.logger.Info("Build complete",
		"processed", stats.Processed,
		"unchanged", stats.Unchanged,
		"skipped", stats.Skipped,
		"missing", stats.Missing,
		"errors", stats.Errors,
	)

	return stats, nil
}

func (o *Orchestrator) processFile(path string, injector *page.Injector) (fileOutcome, error) {
	content, err := o.store.Read(path)
	if err != nil {
		return outcomeSkipped, err
	}

	updated, injected := injector.Inject(content)
	landing := o.isLandingPage(path)
	if !injected && !landing {
		return outcomeSkipped, nil
	}

	if landing {
		updated, err = o.docUpdater.FeatureLatest(updated)
		if err != nil {
			if !errors.Is(err, cards.ErrRegionNotFound) {
				return outcomeSkipped, err
			}
			o.logger.Warn("Card region not found, featuring skipped", "path", path)
		}
	}

	if !o.hasher.Changed(content, updated) {
		return outcomeUnchanged, nil
	}
	if err := o.store.Write(path, updated); err != nil {
		return outcomeSkipped, err
	}
	o.logger.Debug("Page written", "path", path, "hash", o.hasher.ContentHash(updated))
	return outcomeProcessed, nil
}

func (o *Orchestrator) isLandingPage(path string) bool {
	return filepath.Base(path) == filepath.Base(o.cfg.Site.IndexPage)
}

// UpdateIndex пересобирает сетку постов главной страницы: самый свежий пост featured, за ним N следующих
func (o *Orchestrator) UpdateIndex(ctx context.Context) (*IndexStats, error) {
	indexPath := o.cfg.IndexPagePath()
	exists, err := o.store.Exists(indexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat index file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("index file not found: %s", indexPath)
	}

	posts, err := o.generator.CollectPosts()
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("no valid blog posts found under %s", o.cfg.Path(o.cfg.Index.PostsDir))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selected := listing.SelectRecent(posts, o.cfg.Index.RecentCount)
	stats := &IndexStats{
		Posts:    len(posts),
		Featured: selected[0].Title,
		Recent:   len(selected) - 1,
	}

	if stats.Recent < o.cfg.Index.RecentCount {
		o.logger.Warn("Fewer posts than requested",
			"available", stats.Recent,
			"requested", o.cfg.Index.RecentCount,
		)
	}
	o.logger.Info("Index selection",
		"posts", stats.Posts,
		"featured", stats.Featured,
		"recent", listing.TitleSummary(selected[1:]),
	)

	content, err := o.store.Read(indexPath)
	if err != nil {
		return stats, err
	}

	updated, err := o.gridUpdater.Replace(content, selected)
	if err != nil {
		if errors.Is(err, cards.ErrRegionNotFound) {
			o.logger.Warn("Could not find grid section, index left unchanged",
				"path", indexPath,
				"error", err.Error(),
			)
			return stats, nil
		}
		return stats, err
	}
	stats.RegionFound = true

	if o.hasher.Changed(content, updated) {
		if err := o.store.Write(indexPath, updated); err != nil {
			return stats, err
		}
		stats.Written = true
	}

	o.logger.Info("Index page updated",
		"path", indexPath,
		"written", stats.Written,
		"hash", o.hasher.ContentHash(updated),
	)
	return stats, nil
}

// Listing пишет разметку секций категорий
func (o *Orchestrator) Listing(w io.Writer) error {
	byCategory, err := o.generator.CollectArticles()
	if err != nil {
		return err
	}
	return o.generator.RenderSections(w, byCategory)
}

// Migrate конвертирует экспорт WordPress; отсутствие шаблона статьи фатально
func (o *Orchestrator) Migrate(ctx context.Context) (*migrate.Stats, error) {
	template, err := o.loadRequired(o.cfg.Path(o.cfg.Migrate.TemplateFile))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats, err := o.migrator.Run(template)
	if err != nil {
		return stats, err
	}

	o.logger.Info("Migration complete",
		"items", stats.Items,
		"converted", stats.Converted,
		"skipped", stats.Skipped,
		"oversized", stats.Oversized,
		"errors", stats.Errors,
	)
	return stats, nil
}

// Watch пересобирает сетку главной при каждом изменении в каталоге постов, до отмены ctx
func (o *Orchestrator) Watch(ctx context.Context) error {
	if _, err := o.UpdateIndex(ctx); err != nil {
		return err
	}

	w, err := watch.NewWatcher(o.cfg.Path(o.cfg.Index.PostsDir), o.cfg.Watch.Debounce, o.logger, func(ctx context.Context) error {
		stats, err := o.UpdateIndex(ctx)
		if err != nil {
			return err
		}
		o.logger.Info("Index rebuilt after change", "featured", stats.Featured, "written", stats.Written)
		return nil
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
