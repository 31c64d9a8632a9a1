package migrate

import (
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"sitebuild/internal/config"
	"sitebuild/internal/observability"
	"sitebuild/internal/storage"
)

// ErrOversizedOutput результат подстановки превысил лимит — вероятно, зацикленный шаблон
var ErrOversizedOutput = errors.New("generated output exceeds size limit")

type Stats struct {
	Items     int
	Converted int
	Skipped   int
	Oversized int
	Errors    int
}

type Migrator struct {
	cfg    *config.Config
	store  storage.Repository
	logger *observability.Logger
}

func NewMigrator(cfg *config.Config, store storage.Repository, logger *observability.Logger) *Migrator {
	return &Migrator{cfg: cfg, store: store, logger: logger}
}

// Run конвертирует опубликованные записи экспорта в HTML файлы по шаблону
func (m *Migrator) Run(template string) (*Stats, error) {
	exportPath := m.cfg.Path(m.cfg.Migrate.ExportFile)
	export, err := m.store.Read(exportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", exportPath, err)
	}

	posts, err := ParseExport(strings.NewReader(export))
	if err != nil {
		return nil, err
	}

	outDir := m.cfg.Path(m.cfg.Migrate.OutputDir)
	stats := &Stats{Items: len(posts)}

	for _, post := range posts {
		if !post.Publishable() {
			stats.Skipped++
			continue
		}

		output, err := m.Render(template, post)
		if err != nil {
			if errors.Is(err, ErrOversizedOutput) {
				m.logger.Warn("SAFETY STOP: output too large, check the template for loops",
					"title", post.Title,
					"error", err.Error(),
				)
				stats.Oversized++
				continue
			}
			return stats, err
		}

		path := filepath.Join(outDir, FileName(post.Title))
		if err := m.store.Write(path, output); err != nil {
			m.logger.Error("Failed to write article", "path", path, "error", err.Error())
			stats.Errors++
			continue
		}

		m.logger.Info("Article migrated", "title", post.Title, "path", path)
		stats.Converted++
	}

	return stats, nil
}

// Render подставляет контент и заголовок в шаблон ровно по одному разу
func (m *Migrator) Render(template string, post Post) (string, error) {
	title := post.Title
	if title == "" {
		title = "Untitled"
	}

	output := strings.Replace(template, m.cfg.Migrate.ContentPlaceholder, post.Content, 1)
	if ph := m.cfg.Migrate.TitlePlaceholder; ph != "" {
		output = strings.Replace(output, ph, html.EscapeString(title), 1)
	}

	if n := utf8.RuneCountInString(output); n > m.cfg.Migrate.MaxOutputChars {
		return "", fmt.Errorf("%w: %q is %d characters (limit %d)", ErrOversizedOutput, title, n, m.cfg.Migrate.MaxOutputChars)
	}
	return output, nil
}

// FileName имя выходного файла по заголовку
func FileName(title string) string {
	slug := Slugify(title)
	if slug == "" {
		slug = "untitled"
	}
	return slug + ".html"
}
