package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV persists keys in a single JSON document on disk, a flat map
// of string keys to string values. Writes replace the whole document
// atomically (temp file plus rename). Unreadable or corrupt content
// degrades to an empty store; the next successful write overwrites it.
type FileKV struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

func NewFileKV(path string) (*FileKV, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	kv := &FileKV{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		return kv, nil
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		return kv, nil
	}
	kv.data = data
	return kv, nil
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, found := f.data[key]
	return value, found, nil
}

func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.flush()
}

func (f *FileKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.data[key]; !found {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

func (f *FileKV) Close() error {
	return nil
}

// flush writes the whole document. Callers hold the mutex.
func (f *FileKV) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
