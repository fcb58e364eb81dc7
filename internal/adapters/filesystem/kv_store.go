// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/example/splitlog/internal/ports/secondary"
)

// KVStore implements secondary.KeyValueStore as one <key>.json file per key.
type KVStore struct {
	dir string
}

// NewKVStore creates the directory if needed and returns a store rooted there.
func NewKVStore(dir string) (*KVStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &KVStore{dir: dir}, nil
}

func (s *KVStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get reads the file for key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the file for key through a temp file and rename, so readers
// never see a partial value.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	return s.PutMany(ctx, map[string][]byte{key: value})
}

// PutMany stages every value in a temp file before replacing any key, then
// renames them in key order. If a rename fails the keys already replaced
// get their previous contents back, so a failed call leaves the set as it was.
func (s *KVStore) PutMany(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	staged := make([]stagedFile, 0, len(keys))
	defer func() {
		for _, f := range staged {
			os.Remove(f.tmp)
		}
	}()
	for _, k := range keys {
		f, err := s.stage(k, values[k])
		if err != nil {
			return err
		}
		staged = append(staged, f)
	}

	for i, f := range staged {
		if err := os.Rename(f.tmp, f.path); err != nil {
			err = fmt.Errorf("failed to replace %s: %w", f.key, err)
			for _, done := range staged[:i] {
				err = multierr.Append(err, done.restore())
			}
			return err
		}
	}
	return nil
}

// stagedFile is a value written to a temp file but not yet renamed over key.
type stagedFile struct {
	key     string
	path    string
	tmp     string
	prev    []byte
	existed bool
}

func (s *KVStore) stage(key string, value []byte) (stagedFile, error) {
	p, err := s.path(key)
	if err != nil {
		return stagedFile{}, err
	}

	f := stagedFile{key: key, path: p}
	f.prev, err = os.ReadFile(p)
	switch {
	case err == nil:
		f.existed = true
	case !errors.Is(err, os.ErrNotExist):
		return stagedFile{}, fmt.Errorf("failed to read %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return stagedFile{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	f.tmp = tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(f.tmp)
		return stagedFile{}, fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(f.tmp)
		return stagedFile{}, fmt.Errorf("failed to sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(f.tmp)
		return stagedFile{}, fmt.Errorf("failed to close %s: %w", key, err)
	}
	return f, nil
}

// restore puts back what the key held before it was renamed over.
func (f stagedFile) restore() error {
	if !f.existed {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to roll back %s: %w", f.key, err)
		}
		return nil
	}
	if err := os.WriteFile(f.path, f.prev, 0644); err != nil {
		return fmt.Errorf("failed to roll back %s: %w", f.key, err)
	}
	return nil
}

// Close is a no-op; files are not held open.
func (s *KVStore) Close() error {
	return nil
}

// Ensure KVStore implements the interface
var _ secondary.KeyValueStore = (*KVStore)(nil)
