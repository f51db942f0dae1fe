package finance

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// memBridge is an in-memory Bridge for testing.
type memBridge struct {
	snapshot *Ledger
	loadErr  error
	saveErr  error
	saves    int
}

func (b *memBridge) Load() (*Ledger, bool, error) {
	if b.loadErr != nil {
		return nil, false, b.loadErr
	}
	return b.snapshot, b.snapshot != nil, nil
}

func (b *memBridge) Save(l *Ledger) error {
	b.saves++
	if b.saveErr != nil {
		return b.saveErr
	}
	b.snapshot = l
	return nil
}

func newTestStore(t *testing.T, bridge Bridge) *Store {
	t.Helper()
	s := NewStore(bridge, NewSequence(100), zerolog.Nop())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_SeedsWhenEmpty(t *testing.T) {
	s := newTestStore(t, &memBridge{})

	state := s.State()
	if len(state.Accounts) != 3 || len(state.Transactions) != 2 {
		t.Errorf("seed state: %d accounts, %d transactions; want 3 and 2",
			len(state.Accounts), len(state.Transactions))
	}
}

func TestNewStore_SeedsOnLoadError(t *testing.T) {
	bridge := &memBridge{loadErr: errors.New("disk gone")}
	s := newTestStore(t, bridge)

	if len(s.State().Accounts) != 3 {
		t.Errorf("got %d accounts, want the seed dataset", len(s.State().Accounts))
	}
}

func TestNewStore_LoadsSavedSnapshot(t *testing.T) {
	saved := &Ledger{Accounts: []Account{{ID: "7", Name: "Restored", Balance: M(77)}}}
	s := newTestStore(t, &memBridge{snapshot: saved})

	if got := s.State().AccountName("7"); got != "Restored" {
		t.Errorf("AccountName(7) = %q, want Restored", got)
	}
}

func TestStore_DispatchPersists(t *testing.T) {
	bridge := &memBridge{}
	s := newTestStore(t, bridge)

	_, err := s.Dispatch(AddAccount{Account: Account{Name: "New", Type: Savings}})
	if err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if bridge.saves == 0 {
		t.Error("dispatch did not persist a snapshot")
	}
	if bridge.snapshot == nil || len(bridge.snapshot.Accounts) != 4 {
		t.Errorf("persisted snapshot = %+v, want 4 accounts", bridge.snapshot)
	}
}

func TestStore_DispatchRejectionKeepsState(t *testing.T) {
	bridge := &memBridge{}
	s := newTestStore(t, bridge)
	before := s.State()

	_, err := s.Dispatch(DeleteTransaction{ID: "nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Dispatch() error = %v, want ErrNotFound", err)
	}
	if s.State() != before {
		t.Error("state changed on rejected dispatch")
	}
	s.Close()
	if bridge.saves != 0 {
		t.Errorf("rejected dispatch persisted %d times", bridge.saves)
	}
}

func TestStore_SaveFailureDoesNotSurface(t *testing.T) {
	bridge := &memBridge{saveErr: errors.New("disk full")}
	s := newTestStore(t, bridge)

	if _, err := s.Dispatch(AddAccount{Account: Account{Name: "New"}}); err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if len(s.State().Accounts) != 4 {
		t.Error("in-memory state rolled back on save failure")
	}
}

// gatedBridge blocks every Save until the gate channel is closed.
type gatedBridge struct {
	gate  chan struct{}
	mu    sync.Mutex
	saved []*Ledger
}

func (b *gatedBridge) Load() (*Ledger, bool, error) { return nil, false, nil }

func (b *gatedBridge) Save(l *Ledger) error {
	<-b.gate
	b.mu.Lock()
	b.saved = append(b.saved, l)
	b.mu.Unlock()
	return nil
}

func TestStore_DispatchNeverBlocksOnSaves(t *testing.T) {
	bridge := &gatedBridge{gate: make(chan struct{})}
	s := NewStore(bridge, NewSequence(100), zerolog.Nop())

	// Three dispatches while the first save is still in flight. All must
	// return immediately; a blocking dispatch deadlocks the test here.
	for _, name := range []string{"A", "B", "C"} {
		if _, err := s.Dispatch(AddAccount{Account: Account{Name: name}}); err != nil {
			t.Fatalf("Dispatch(%s) failed: %v", name, err)
		}
	}

	close(bridge.gate)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// Queued snapshots coalesce latest-wins; the last write must carry the
	// final state.
	if len(bridge.saved) == 0 {
		t.Fatal("nothing was persisted")
	}
	if len(bridge.saved) > 3 {
		t.Errorf("%d saves for 3 dispatches, want coalescing", len(bridge.saved))
	}
	last := bridge.saved[len(bridge.saved)-1]
	if len(last.Accounts) != 6 {
		t.Errorf("final snapshot has %d accounts, want 6 (3 seed + 3 added)", len(last.Accounts))
	}
}

func TestStore_NilBridgeIsInMemory(t *testing.T) {
	s := newTestStore(t, nil)

	if _, err := s.Dispatch(AddAccount{Account: Account{Name: "Volatile"}}); err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if len(s.State().Accounts) != 4 {
		t.Errorf("got %d accounts, want 4", len(s.State().Accounts))
	}
}
