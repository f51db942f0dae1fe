package finance

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource hands out fresh unique ids for new records. Injecting it keeps
// Apply a pure function of (state, command, ids) with no wall-clock
// dependence.
type IDSource interface {
	NewID() string
}

// UUIDSource generates random uuid ids.
type UUIDSource struct{}

func (UUIDSource) NewID() string { return uuid.NewString() }

// Sequence generates deterministic ids "1", "2", ... for tests and seeds.
type Sequence struct {
	n int
}

// NewSequence returns a Sequence starting after the given value.
func NewSequence(start int) *Sequence { return &Sequence{n: start} }

func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprint(s.n)
}
