// Package persist provides durable slots for ledger snapshots: a JSON file
// slot and a SQLite-backed slot. Both implement finance.Bridge and store the
// snapshot as a single serialized blob, overwrite not merge.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

// DefaultSlot is the slot name used when none is configured.
const DefaultSlot = "financeData"

// File is a snapshot slot backed by one JSON file.
type File struct {
	Path string
}

// NewFile returns a file slot at dir/<slot>.json.
func NewFile(dir, slot string) *File {
	if slot == "" {
		slot = DefaultSlot
	}
	return &File{Path: filepath.Join(dir, slot+".json")}
}

// Load reads the slot. A missing file means the slot is empty, not an error.
func (f *File) Load() (*finance.Ledger, bool, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read slot %q: %w", f.Path, err)
	}
	ledger := finance.NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		return nil, false, fmt.Errorf("cannot parse slot %q: %w", f.Path, err)
	}
	return ledger, true, nil
}

// Save overwrites the slot with the full snapshot.
func (f *File) Save(l *finance.Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("cannot create slot directory: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", f.Path, err)
	}
	return nil
}
