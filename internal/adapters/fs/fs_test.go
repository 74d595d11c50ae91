package fs

import (
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestReadOnlyFileSystem(t *testing.T) {
	fsys := NewReadOnlyFileSystem(fstest.MapFS{
		"index.html":       {Data: []byte("home")},
		"about/index.html": {Data: []byte("about")},
	})

	data, err := fsys.ReadFile("/about/index.html")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "about" {
		t.Errorf("ReadFile() = %q, want about", data)
	}

	if !fsys.FileExists("/index.html") {
		t.Error("FileExists(/index.html) = false")
	}
	if fsys.FileExists("/about") {
		t.Error("directories are not files")
	}

	if _, err := fsys.ReadFile("/missing.html"); err == nil {
		t.Error("ReadFile(/missing.html) should fail")
	}
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	nested := filepath.Join(dir, "a", "b")
	if err := fsys.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error: %v", err)
	}

	file := filepath.Join(nested, "f.txt")
	if err := fsys.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if !fsys.FileExists(file) {
		t.Error("FileExists() = false after write")
	}

	if data, _ := fsys.ReadFile(file); string(data) != "x" {
		t.Errorf("ReadFile() = %q, want x", data)
	}

	if err := fsys.RemoveAll(filepath.Join(dir, "a")); err != nil {
		t.Fatalf("RemoveAll() error: %v", err)
	}
	if fsys.FileExists(file) {
		t.Error("file still exists after RemoveAll")
	}
}
