package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists every collection in a single JSON document. Each
// operation performs a full read-modify-write of the document under one
// mutex, so mutations within a process never interleave. Writes go through a
// temp file plus rename so the document is never left partially written.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store backed by the JSON document at path.
// A missing file is treated as an empty store and created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List implements Store.
func (s *FileStore) List(ctx context.Context, collection string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	recs := doc[collection]
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Clone())
	}
	return out, nil
}

// Append implements Store.
func (s *FileStore) Append(ctx context.Context, collection string, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	doc[collection] = append(doc[collection], rec.Clone())

	if err := s.save(doc); err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

// UpdateByID implements Store.
func (s *FileStore) UpdateByID(ctx context.Context, collection string, patch Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	recs := doc[collection]
	for i, rec := range recs {
		if rec.ID() != patch.ID() {
			continue
		}

		merged := merge(rec, patch)
		recs[i] = merged

		if err := s.save(doc); err != nil {
			return nil, err
		}
		return merged.Clone(), nil
	}

	return nil, ErrNotFound
}

// load reads the whole document from disk.
func (s *FileStore) load() (map[string][]Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]Record), nil
		}
		return nil, fmt.Errorf("read store file %s: %w", s.path, err)
	}

	doc := make(map[string][]Record)
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", s.path, err)
	}
	return doc, nil
}

// save writes the whole document atomically.
func (s *FileStore) save(doc map[string][]Record) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize store document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
