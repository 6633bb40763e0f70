package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileRecord tracks one ingested source file.
type FileRecord struct {
	Hash        string    `json:"hash"`
	Title       string    `json:"title"`
	Chunks      int       `json:"chunks"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Manifest maps source filenames to their ingestion records. A file
// absent from the map has never been processed.
type Manifest struct {
	Files map[string]FileRecord `json:"files"`
}

func NewManifest() *Manifest {
	return &Manifest{Files: map[string]FileRecord{}}
}

// Store persists the manifest as a JSON document at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns an empty manifest when the file does not exist yet.
func (s *Store) Load() (*Manifest, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewManifest(), nil
		}
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Files == nil {
		m.Files = map[string]FileRecord{}
	}
	return &m, nil
}

// Save writes to a temp file and renames it over the target so a crash
// mid-write never corrupts the previous manifest.
func (s *Store) Save(m *Manifest) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// HashFile computes the SHA-256 digest of a file, streamed in 4KB
// blocks so large PDFs are never loaded whole into memory.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, 4096)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
