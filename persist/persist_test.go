package persist

import (
	"os"
	"path/filepath"
	"testing"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

func TestFile_RoundTrip(t *testing.T) {
	slot := NewFile(t.TempDir(), "test")

	want := finance.Seed()
	if err := slot.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, ok, err := slot.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !ok {
		t.Fatal("Load() reported an empty slot after Save()")
	}
	if len(got.Accounts) != len(want.Accounts) || len(got.Transactions) != len(want.Transactions) {
		t.Errorf("round trip lost data: %d accounts / %d transactions", len(got.Accounts), len(got.Transactions))
	}
	if got, want := got.Account("3").Balance, want.Account("3").Balance; !got.Equal(want) {
		t.Errorf("negative balance survived as %s, want %s", got, want)
	}
	if got.Transactions[0].Date.String() != "2024-01-15" {
		t.Errorf("date survived as %s", got.Transactions[0].Date)
	}
}

func TestFile_MissingSlot(t *testing.T) {
	slot := NewFile(t.TempDir(), "never-saved")

	l, ok, err := slot.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if ok || l != nil {
		t.Errorf("Load() = %+v, %v; want empty slot", l, ok)
	}
}

func TestFile_CorruptSlot(t *testing.T) {
	dir := t.TempDir()
	slot := NewFile(dir, "bad")
	if err := os.WriteFile(slot.Path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := slot.Load(); err == nil {
		t.Error("Load() of corrupt slot should fail")
	}
}

func TestFile_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	slot := NewFile(dir, "")

	if err := slot.Save(finance.NewLedger()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if filepath.Base(slot.Path) != DefaultSlot+".json" {
		t.Errorf("Path = %q, want default slot name", slot.Path)
	}
	if _, err := os.Stat(slot.Path); err != nil {
		t.Errorf("slot file missing: %v", err)
	}
}
