package storage

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// FileStore persists all keys as one msgpack-encoded map
// Writes go to a temp file in the same directory and are renamed into place
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]int // nil until first load
}

// NewFileStore creates a store backed by path; the file is read lazily
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return 0, false, err
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FileStore) Set(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		if !errors.Is(err, ErrCorrupt) {
			return err
		}
		// Corrupt file is replaced by a fresh map
		s.values = make(map[string]int)
	}

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// load reads the file once; a missing file is an empty store
func (s *FileStore) load() error {
	if s.values != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = make(map[string]int)
			return nil
		}
		return errors.Wrapf(err, "read %s", s.path)
	}

	values := make(map[string]int)
	if len(data) > 0 {
		if err := msgpack.Unmarshal(data, &values); err != nil {
			return errors.Wrapf(ErrCorrupt, "decode %s: %v", s.path, err)
		}
	}
	s.values = values
	return nil
}

func (s *FileStore) flush() error {
	data, err := msgpack.Marshal(s.values)
	if err != nil {
		return errors.Wrap(err, "encode scores")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmpFile, err := os.CreateTemp(dir, ".scores-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "write temp file")
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "rename to %s", s.path)
	}
	return nil
}
