package migrate

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// Post опубликованная запись из экспорта WordPress
type Post struct {
	Title   string
	Content string
	Type    string
	Status  string
}

// ParseExport читает RSS экспорт WordPress и возвращает все item с полями wp:post_type/wp:status
func ParseExport(r io.Reader) ([]Post, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WordPress export: %w", err)
	}

	posts := make([]Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		posts = append(posts, Post{
			Title:   strings.TrimSpace(item.Title),
			Content: item.Content,
			Type:    wpField(item.Extensions, "post_type"),
			Status:  wpField(item.Extensions, "status"),
		})
	}
	return posts, nil
}

// Publishable только опубликованные записи типа post
func (p Post) Publishable() bool {
	return p.Type == "post" && p.Status == "publish"
}

func wpField(extensions ext.Extensions, name string) string {
	values := extensions["wp"][name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}
