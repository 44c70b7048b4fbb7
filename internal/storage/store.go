package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// ReadDocument reads the data file at path. A missing or unparseable
// file is recovered into a fresh empty document, never an error: the
// application must keep working after a wiped or corrupted file.
func ReadDocument(path string) *models.Document {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithField("path", path).WithError(err).Warn("Data file unreadable, starting empty")
		}
		return models.NewDocument()
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		logrus.WithField("path", path).WithError(err).Warn("Data file corrupt, starting empty")
		return models.NewDocument()
	}

	doc.Normalize()
	return &doc
}

// WriteDocument serializes the whole document and replaces the data
// file atomically: the bytes land in a temp file first and are renamed
// into place, so a concurrent reader never sees a half-written file.
func WriteDocument(path string, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %v", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".growth-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %v", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %v", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %v", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %v", err)
	}
	return nil
}

// Store owns the application document: one in-memory copy guarded by a
// mutex, persisted as a single JSON file. Every mutation runs through
// Update, which serializes the whole load-mutate-save cycle — two
// sessions liking the same post can no longer lose an increment.
type Store struct {
	path string

	mu  sync.Mutex
	doc *models.Document
}

// Open loads the document once at startup.
func Open(path string) *Store {
	doc := ReadDocument(path)
	logrus.WithFields(logrus.Fields{
		"path":  path,
		"users": len(doc.Users),
	}).Info("Store opened")
	return &Store{path: path, doc: doc}
}

// View runs fn with read access to the document. fn must not retain or
// mutate the document; copy out anything it needs.
func (s *Store) View(fn func(doc *models.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update runs fn against a copy of the document and persists the
// result. If fn errors or the write fails, the in-memory document is
// left untouched — the mutation is discarded, not half-applied.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := clone(s.doc)
	if err != nil {
		return err
	}
	if err := fn(next); err != nil {
		return err
	}
	next.Version = models.SchemaVersion
	if err := WriteDocument(s.path, next); err != nil {
		logrus.WithField("path", s.path).WithError(err).Error("Failed to persist document")
		return err
	}
	s.doc = next
	return nil
}

// Flush rewrites the data file from the in-memory document.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return WriteDocument(s.path, s.doc)
}

// Close flushes and releases the store.
func (s *Store) Close() error {
	if err := s.Flush(); err != nil {
		return fmt.Errorf("failed to flush store on close: %v", err)
	}
	logrus.WithField("path", s.path).Info("Store closed")
	return nil
}

func clone(doc *models.Document) (*models.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to clone document: %v", err)
	}
	var out models.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to clone document: %v", err)
	}
	out.Normalize()
	return &out, nil
}
