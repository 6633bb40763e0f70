package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsEmptyManifest(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	m, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Files == nil {
		t.Fatal("Files map is nil")
	}
	if len(m.Files) != 0 {
		t.Errorf("got %d records, want 0", len(m.Files))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manifest.json")
	store := NewStore(path)

	m := NewManifest()
	m.Files["meditations.pdf"] = FileRecord{
		Hash:        "abc123",
		Title:       "Meditations",
		Chunks:      42,
		ProcessedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	if err := store.Save(m); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	rec, ok := loaded.Files["meditations.pdf"]
	if !ok {
		t.Fatal("record missing after round trip")
	}
	if rec.Hash != "abc123" || rec.Title != "Meditations" || rec.Chunks != 42 {
		t.Errorf("record mismatch: %+v", rec)
	}
	if !rec.ProcessedAt.Equal(m.Files["meditations.pdf"].ProcessedAt) {
		t.Errorf("ProcessedAt mismatch: %v", rec.ProcessedAt)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "manifest.json"))

	if err := store.Save(NewManifest()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "manifest.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after Save")
	}
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.bin")
	if err := os.WriteFile(path, []byte("the same content"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}
	second, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}
	if first != second {
		t.Error("same content hashed differently")
	}
	if len(first) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(first))
	}

	if err := os.WriteFile(path, []byte("different content"), 0644); err != nil {
		t.Fatal(err)
	}
	third, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}
	if third == first {
		t.Error("different content produced the same hash")
	}
}
