package fsstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sitebuild/internal/observability"
	"sitebuild/internal/storage"
)

func newTestRepository() *Repository {
	return NewRepository(observability.NewDiscardLogger())
}

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepository()
	path := filepath.Join(dir, "nested", "page.html")

	if err := repo.Write(path, "<p>one</p>"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := repo.Write(path, "<p>two</p>"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := repo.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "<p>two</p>" {
		t.Errorf("Read() = %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Write() did not keep file mode: %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestReadMissing(t *testing.T) {
	_, err := newTestRepository().Read(filepath.Join(t.TempDir(), "none.html"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Read() error = %v, want ErrNotFound", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepository()

	ok, err := repo.Exists(dir)
	if err != nil || !ok {
		t.Errorf("Exists(dir) = %v, %v", ok, err)
	}
	ok, err = repo.Exists(filepath.Join(dir, "none"))
	if err != nil || ok {
		t.Errorf("Exists(missing) = %v, %v", ok, err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{
		"index.html",
		"about.HTML",
		"notes.txt",
		"blog-posts/enhance/a.html",
		"templates/header.html",
		"node_modules/pkg/readme.html",
		".git/hooks/x.html",
	} {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := newTestRepository().Discover(dir, []string{"templates", "node_modules"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "about.HTML"),
		filepath.Join(dir, "blog-posts", "enhance", "a.html"),
		filepath.Join(dir, "index.html"),
	}
	if len(files) != len(want) {
		t.Fatalf("Discover() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("Discover()[%d] = %q, want %q", i, files[i], want[i])
		}
	}

	_, err = newTestRepository().Discover(filepath.Join(dir, "missing"), nil)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Discover() of missing root error = %v, want ErrNotFound", err)
	}
}
