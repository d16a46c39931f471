// Package store persists the wizard's answers in a namespaced yaml file
// (.yo-rc.yaml) in the directory the run started from, so a later run or tool
// can read them back.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// FileName is the store file written in the run directory.
const FileName = ".yo-rc.yaml"

// Store is a key-value view of one namespace in the store file. Set only
// changes memory; Save writes the whole file.
type Store struct {
	fs        afero.Fs
	path      string
	namespace string
	// other namespaces found in the file, preserved on Save
	others map[string]map[string]any
	values map[string]any
}

// Open loads the store file in dir. A missing file yields an empty store.
func Open(fsys afero.Fs, dir, namespace string) (*Store, error) {
	s := &Store{
		fs:        fsys,
		path:      filepath.Join(dir, FileName),
		namespace: namespace,
		others:    map[string]map[string]any{},
		values:    map[string]any{},
	}

	data, err := afero.ReadFile(fsys, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	for ns, vals := range doc {
		if vals == nil {
			vals = map[string]any{}
		}
		if ns == namespace {
			s.values = vals
		} else {
			s.others[ns] = vals
		}
	}
	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string { return s.path }

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value any) {
	s.values[key] = value
}

// Delete removes key.
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// Get returns the value under key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns a shallow copy of the namespace.
func (s *Store) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Save writes the store file through a temp file and rename.
func (s *Store) Save() error {
	doc := make(map[string]map[string]any, len(s.others)+1)
	for ns, vals := range s.others {
		doc[ns] = vals
	}
	doc[s.namespace] = s.values

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := afero.TempFile(s.fs, dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("creating temp store file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("closing store: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
