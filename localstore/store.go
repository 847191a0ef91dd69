// Package localstore persists the anonymous collection as a single
// JSON document on disk, the file analogue of the original browser
// storage key. Every mutation is mirrored in full so a restart loses
// nothing.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hyejin/moneybook"
)

// DefaultFile is the well-known name of the anonymous collection file.
const DefaultFile = "anonymous-transactions.json"

// Store is the anonymous moneybook.Backend. Create assigns locally
// generated ids; Update, Delete and Reorder mutate nothing here
// because the in-memory collection is authoritative and Mirror
// rewrites the whole file after every committed mutation.
type Store struct {
	path   string
	lastID int64
}

// Open returns a Store over the given file path. The file need not
// exist yet.
func Open(path string) *Store { return &Store{path: path} }

var _ moneybook.Backend = (*Store)(nil)

// Load reads the persisted collection, or an empty one when the file
// does not exist yet.
func (s *Store) Load() ([]moneybook.Transaction, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var txs []moneybook.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("cannot parse local collection %q: %w", s.path, err)
	}
	return txs, nil
}

// Create assigns a locally generated id. Ids are unix milliseconds,
// bumped past the last issued one so rapid creates stay unique.
func (s *Store) Create(tx moneybook.Transaction) (moneybook.Transaction, error) {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	tx.ID = id
	return tx, nil
}

// Update is a no-op: Mirror persists the merged record.
func (s *Store) Update(int64, moneybook.Patch) error { return nil }

// Delete is a no-op: Mirror persists the shrunk collection.
func (s *Store) Delete(int64) error { return nil }

// Reorder is a no-op: Mirror persists the new order.
func (s *Store) Reorder([]int64) error { return nil }

// Mirror rewrites the whole collection. The write goes through a
// temporary file and a rename so a crash never leaves a torn file.
func (s *Store) Mirror(txs []moneybook.Transaction) error {
	if txs == nil {
		txs = []moneybook.Transaction{}
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
