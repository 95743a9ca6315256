package arith

import "github.com/ramp-go/bigmath/internal/limb"

// Scratch is a scoped bump allocator for the temporary limb buffers the
// multiplication, squaring and Montgomery reduction kernels need during
// a single top-level call. It plays the role math/big's natPool
// sync.Pool plays for nat reuse, generalized to the original ramp
// crate's mem::TmpAllocator: one growable backing slice with a bump
// offset, reset once per top-level call rather than returned limb by
// limb to a pool.
type Scratch struct {
	buf    []limb.Word
	offset int
}

// NewScratch allocates a Scratch with room for capacityWords limbs
// before it needs to grow.
func NewScratch(capacityWords int) *Scratch {
	return &Scratch{buf: make([]limb.Word, capacityWords)}
}

// Alloc returns a zeroed slice of n limbs carved out of the arena,
// growing the backing buffer if necessary. The returned slice is only
// valid until the next Reset.
func (s *Scratch) Alloc(n int) []limb.Word {
	if s.offset+n > len(s.buf) {
		grown := make([]limb.Word, s.offset+n)
		copy(grown, s.buf[:s.offset])
		s.buf = grown
	}
	out := s.buf[s.offset : s.offset+n]
	Zero(out, n)
	s.offset += n
	return out
}

// Reset rewinds the arena so all previously allocated slices are
// considered free. Callers must not retain slices across a Reset.
func (s *Scratch) Reset() {
	s.offset = 0
}

// Len reports how many limbs are currently allocated out of the arena.
func (s *Scratch) Len() int {
	return s.offset
}
