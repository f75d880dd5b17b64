// Package store provides a thin bbolt wrapper for inkplot's local
// dataset store.
//
// Design philosophy: the store is an intentional data accumulator, not a
// cache. Datasets are written explicitly via `store put` and read by
// chart and table commands. No TTL, no auto-invalidation — you own your
// data.
//
// Buckets:
//
//	datasets — JSONL-encoded record sets keyed by dataset name
//	_meta    — internal: schema version, created_at, per-dataset info
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jclemens/inkplot/internal/record"
)

// Current schema version. Bump when bucket layout or key format changes.
const schemaVersion = 1

var (
	bucketDatasets = []byte("datasets")
	bucketInternal = []byte("_meta")
)

// Info describes one stored dataset.
type Info struct {
	Name    string    `json:"name"`
	Records int       `json:"records"`
	Fields  []string  `json:"fields"`
	SavedAt time.Time `json:"saved_at"`
}

// Store wraps a bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the bbolt database at path.
// Parent directories are created automatically.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the filesystem path of the open database.
func (s *Store) Path() string {
	return s.db.Path()
}

// migrate ensures all buckets exist and schema is current.
func (s *Store) migrate() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketDatasets, bucketInternal} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		meta := tx.Bucket(bucketInternal)
		if meta.Get([]byte("schema_version")) == nil {
			if err := meta.Put([]byte("schema_version"), []byte(fmt.Sprintf("%d", schemaVersion))); err != nil {
				return err
			}
			if err := meta.Put([]byte("created_at"), []byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
				return err
			}
		}
		return nil
	})
}

// infoKey namespaces per-dataset info inside the _meta bucket.
func infoKey(name string) []byte {
	return []byte("info:" + name)
}

// Put stores records under name, replacing any previous dataset with
// that name, and records its Info.
func (s *Store) Put(name string, records []record.Record) error {
	if name == "" {
		return fmt.Errorf("store: dataset name must not be empty")
	}
	if len(records) == 0 {
		return fmt.Errorf("store: refusing to save empty dataset %q", name)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding dataset %q: %w", name, err)
	}

	fields := map[string]bool{}
	for _, r := range records {
		for k := range r {
			fields[k] = true
		}
	}
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	info, err := json.Marshal(Info{
		Name:    name,
		Records: len(records),
		Fields:  names,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding dataset info: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketDatasets).Put([]byte(name), data); err != nil {
			return err
		}
		return tx.Bucket(bucketInternal).Put(infoKey(name), info)
	})
}

// Get retrieves the dataset stored under name.
// Returns (records, true, nil) if found, (nil, false, nil) if not.
func (s *Store) Get(name string) ([]record.Record, bool, error) {
	var records []record.Record
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketDatasets).Get([]byte(name))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &records)
	})
	if err != nil {
		return nil, false, fmt.Errorf("decoding dataset %q: %w", name, err)
	}
	return records, found, nil
}

// Delete removes a dataset and its info. Deleting a missing dataset is
// an error so typos surface.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDatasets)
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("dataset %q not found", name)
		}
		if err := b.Delete([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket(bucketInternal).Delete(infoKey(name))
	})
}

// List returns Info for every stored dataset, sorted by name.
func (s *Store) List() ([]Info, error) {
	var infos []Info
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDatasets).ForEach(func(k, v []byte) error {
			info := Info{Name: string(k)}
			if iv := tx.Bucket(bucketInternal).Get(infoKey(string(k))); iv != nil {
				if err := json.Unmarshal(iv, &info); err != nil {
					return err
				}
			}
			infos = append(infos, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// GetInfo returns the Info for one dataset.
func (s *Store) GetInfo(name string) (Info, bool, error) {
	var info Info
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketInternal).Get(infoKey(name))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &info)
	})
	return info, found, err
}
