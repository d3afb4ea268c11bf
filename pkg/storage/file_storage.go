package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileStorage persists documents as flat JSON files under a per-project
// directory: <dataDir>/<project>/<key>.json.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage creates the project directory if needed.
func NewFileStorage(dataDir, project string) (*FileStorage, error) {
	dir := filepath.Join(dataDir, sanitize(project))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the project's data directory.
func (fs *FileStorage) Dir() string {
	return fs.dir
}

// Save writes the document as indented JSON.
func (fs *FileStorage) Save(ctx context.Context, key string, data interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := os.WriteFile(fs.path(key), jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Load reads a document into dest.
func (fs *FileStorage) Load(ctx context.Context, key string, dest interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	jsonData, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("key not found: %s", key)
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(jsonData, dest); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return nil
}

// Delete removes a document; deleting a missing key is not an error.
func (fs *FileStorage) Delete(ctx context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Exists checks whether a document is present.
func (fs *FileStorage) Exists(ctx context.Context, key string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, err := os.Stat(fs.path(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// List returns all stored keys in sorted order.
func (fs *FileStorage) List(ctx context.Context) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

func (fs *FileStorage) path(key string) string {
	return filepath.Join(fs.dir, sanitize(key)+".json")
}

// sanitize keeps keys and project names inside the data directory.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", " ", "_")
	return replacer.Replace(name)
}
