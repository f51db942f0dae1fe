package persist

import (
	"path/filepath"
	"testing"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

func openTestDB(t *testing.T, path, slot string) *DB {
	t.Helper()
	db, err := OpenDB(path, slot)
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_RoundTrip(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "pft.db"), "test")

	// A fresh slot is empty.
	if _, ok, err := db.Load(); err != nil || ok {
		t.Fatalf("Load() of fresh slot = ok %v, err %v; want empty", ok, err)
	}

	want := finance.Seed()
	if err := db.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, ok, err := db.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !ok {
		t.Fatal("Load() reported an empty slot after Save()")
	}
	if len(got.Accounts) != 3 || len(got.Transactions) != 2 {
		t.Errorf("round trip lost data: %d accounts / %d transactions", len(got.Accounts), len(got.Transactions))
	}
	if got, want := got.Account("3").Balance, want.Account("3").Balance; !got.Equal(want) {
		t.Errorf("balance survived as %s, want %s", got, want)
	}
}

func TestDB_SaveOverwritesSlot(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "pft.db"), "test")

	if err := db.Save(finance.Seed()); err != nil {
		t.Fatalf("first Save() failed: %v", err)
	}
	if err := db.Save(finance.NewLedger()); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	got, ok, err := db.Load()
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if len(got.Accounts) != 0 {
		t.Errorf("got %d accounts, want the later empty snapshot", len(got.Accounts))
	}
}

func TestDB_SlotsAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pft.db")
	a := openTestDB(t, path, "a")
	b := openTestDB(t, path, "b")

	if err := a.Save(finance.Seed()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, ok, err := b.Load(); err != nil || ok {
		t.Errorf("slot b = ok %v, err %v; want still empty", ok, err)
	}
}

func TestDB_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pft.db")

	db, err := OpenDB(path, "test")
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	if err := db.Save(finance.Seed()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// Reopening runs migrations again; they must tolerate the existing
	// schema and leave the data alone.
	db = openTestDB(t, path, "test")
	got, ok, err := db.Load()
	if err != nil || !ok {
		t.Fatalf("Load() after reopen = ok %v, err %v", ok, err)
	}
	if len(got.Accounts) != 3 {
		t.Errorf("got %d accounts after reopen, want 3", len(got.Accounts))
	}
}
