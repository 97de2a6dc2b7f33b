package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "a", "b", "frame.bin")

	if err := fs.WriteFile(testPath, []byte("hello")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected %q, got %q", "hello", data)
	}
}

func TestFileSystem_Create(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "out", "anim.gif")

	w, err := fs.Create(testPath)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("GIF89a")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "GIF89a" {
		t.Errorf("expected GIF89a, got %q", data)
	}
}

func TestFileSystem_Glob(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	for _, name := range []string{"frame-002.png", "frame-000.png", "frame-001.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	matches, err := fs.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	want := []string{"frame-000.png", "frame-001.png", "frame-002.png"}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %v", len(want), matches)
	}
	for i, m := range matches {
		if filepath.Base(m) != want[i] {
			t.Errorf("match %d: expected %s, got %s", i, want[i], filepath.Base(m))
		}
	}
}

func TestFileSystem_ExistsAndRemove(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	testPath := filepath.Join(dir, "test.txt")

	exists, err := fs.Exists(testPath)
	if err != nil || exists {
		t.Fatalf("expected missing file, got exists=%v err=%v", exists, err)
	}

	if err := fs.MkdirAll(filepath.Join(dir, "nested", "dir")); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := fs.WriteFile(testPath, []byte("test")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if exists, _ := fs.Exists(testPath); !exists {
		t.Error("expected file to exist")
	}

	if err := fs.Remove(testPath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := fs.Exists(testPath); exists {
		t.Error("expected file to be removed")
	}
}
