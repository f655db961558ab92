package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a single JSON object on disk. Every write
// rewrites the file synchronously so the on-disk state always matches the
// last successful Set, mirroring the write-through behaviour of an
// origin-scoped browser store.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFile loads (or creates) the store file at path.
func NewFile(path string) (*File, error) {
	if path == "" {
		path = "./data/cms-store.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	f := &File{path: path, data: make(map[string]string)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(raw) > 0 {
		// A corrupt file degrades to an empty store rather than failing
		// startup; the content stores re-seed on missing keys.
		_ = json.Unmarshal(raw, &f.data)
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, existed := f.data[key]
	f.data[key] = value
	if err := f.flush(); err != nil {
		if existed {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *File) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, existed := f.data[key]
	if !existed {
		return
	}
	delete(f.data, key)
	// The Store contract gives Delete no error return, so keep memory
	// and disk consistent by restoring the key when the write fails.
	if err := f.flush(); err != nil {
		f.data[key] = prev
	}
}

func (f *File) flush() error {
	raw, err := json.Marshal(f.data)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
