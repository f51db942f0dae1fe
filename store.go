package finance

import (
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Bridge is the persistence collaborator: one durable slot holding the full
// serialized ledger snapshot. The core only ever reads it once, at startup,
// and overwrites it after every state change.
type Bridge interface {
	// Load reads the slot. ok is false when the slot holds no snapshot yet.
	Load() (l *Ledger, ok bool, err error)
	// Save overwrites the slot with the full snapshot.
	Save(l *Ledger) error
}

// Store owns the process-wide ledger state. All mutations funnel through
// Dispatch; readers take the current snapshot from State. There is no
// locking: the tracker is single-threaded by design and every operation is
// a pure function of (state, command).
type Store struct {
	state  *Ledger
	ids    IDSource
	bridge Bridge
	log    zerolog.Logger

	saves    errgroup.Group
	mu       sync.Mutex
	pending  *Ledger // latest snapshot not yet written
	draining bool
}

// NewStore builds a Store seeded from the bridge. A missing or unreadable
// slot falls back to the fixed seed dataset; the failure is logged, never
// surfaced. A nil bridge keeps the store purely in-memory.
func NewStore(bridge Bridge, ids IDSource, log zerolog.Logger) *Store {
	s := &Store{ids: ids, bridge: bridge, log: log}

	s.state = Seed()
	if bridge != nil {
		ledger, ok, err := bridge.Load()
		switch {
		case err != nil:
			log.Error().Err(err).Msg("could not load saved data, starting from seed")
		case ok:
			s.state = ledger
		}
	}
	return s
}

// State returns the current ledger snapshot. Callers must treat it as
// read-only; the next Dispatch replaces it wholesale.
func (s *Store) State() *Ledger { return s.state }

// Dispatch applies one command and installs the resulting state. Failed
// operations (unknown transaction ids) leave the state untouched, are
// logged, and are reported back to the caller.
//
// Every successful dispatch triggers a fire-and-forget save of the new
// snapshot. Save failures are logged and never roll back the in-memory
// state, and there is no retry: the next dispatch overwrites the slot again.
func (s *Store) Dispatch(cmd Command) (*Ledger, error) {
	next, err := Apply(s.state, cmd, s.ids)
	if err != nil {
		s.log.Error().Err(err).Str("op", string(cmd.What())).Msg("operation rejected")
		return s.state, err
	}
	s.state = next
	s.persist(next)
	return next, nil
}

// persist queues the snapshot for a background save and returns immediately.
// Saves coalesce latest-wins: a snapshot queued while a save is in flight
// replaces any earlier queued one, since each save overwrites the whole slot.
func (s *Store) persist(snapshot *Ledger) {
	if s.bridge == nil {
		return
	}
	s.mu.Lock()
	s.pending = snapshot
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	s.saves.Go(s.drain)
}

func (s *Store) drain() error {
	for {
		s.mu.Lock()
		snapshot := s.pending
		s.pending = nil
		if snapshot == nil {
			s.draining = false
			s.mu.Unlock()
			return nil
		}
		s.mu.Unlock()

		if err := s.bridge.Save(snapshot); err != nil {
			s.log.Error().Err(err).Msg("could not persist snapshot")
		}
	}
}

// Close flushes pending saves. Call it once at process exit.
func (s *Store) Close() error {
	return s.saves.Wait()
}
