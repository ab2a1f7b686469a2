// Package store provides the key-value persistence the ledger engine saves
// its snapshots through. Values are opaque blobs; the SnapshotRepository owns
// their JSON encoding.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"fjacquet/financeos/internal/fileutils"
	"fjacquet/financeos/internal/models"
)

// ErrNotFound is returned by Load when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Backend names accepted by New.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// KeyValueStore loads and saves whole blobs under string keys.
type KeyValueStore interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid store key %q", key)
	}
	return nil
}

// FileStore keeps every key in its own <key>.json file under Dir.
type FileStore struct {
	Dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: fileutils.ExpandHome(dir)}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Load reads the file for key. A missing file is ErrNotFound.
func (s *FileStore) Load(key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := fileutils.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Save replaces the file for key atomically.
func (s *FileStore) Save(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return fileutils.WriteFileAtomic(s.path(key), data, models.PermissionDataFile)
}
