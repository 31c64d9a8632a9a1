package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"sitebuild/internal/observability"
)

func TestWatcherTriggersOnHTMLChange(t *testing.T) {
	root := t.TempDir()
	changes := make(chan struct{}, 10)

	w, err := NewWatcher(root, 50*time.Millisecond, observability.NewDiscardLogger(), func(ctx context.Context) error {
		changes <- struct{}{}
		return nil
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(root, "post.html"), []byte("<p/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called after writing an html file")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestWatcherMissingRoot(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), time.Second, observability.NewDiscardLogger(), nil)
	if err == nil {
		t.Errorf("NewWatcher() on missing root should fail")
	}
}

func TestRelevant(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(root, time.Second, observability.NewDiscardLogger(), nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.fw.Close()

	tests := []struct {
		name string
		want bool
	}{
		{"post.html", true},
		{"POST.HTML", true},
		{"notes.txt", false},
		{".post.html.123.tmp", false},
		{".hidden.html", false},
	}

	for _, tt := range tests {
		event := fsnotify.Event{Name: filepath.Join(root, tt.name), Op: fsnotify.Write}
		if got := w.relevant(event); got != tt.want {
			t.Errorf("relevant(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
