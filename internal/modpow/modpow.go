// Package modpow implements left-to-right, fixed-window k-ary modular
// exponentiation: a generic driver built on plain multiply-then-divide
// (k=7) for arbitrary moduli, and a Montgomery driver (k=6) for odd
// moduli, in internal/modpow/modpow_montgomery.go.
package modpow

import (
	"github.com/ramp-go/bigmath/internal/arith"
	"github.com/ramp-go/bigmath/internal/limb"
	"github.com/ramp-go/bigmath/internal/mul"
	"github.com/ramp-go/bigmath/internal/span"
)

// genericWindowBits is the fixed window width k used by the generic
// (multiply + divide) driver.
const genericWindowBits = 7

// bit returns the p'th bit of the mn-limb little-endian value x.
func bit(x []limb.Word, p int) limb.Word {
	return (x[p/limb.Bits] >> uint(p%limb.Bits)) & 1
}

// ModPow computes w = a^b mod m using plain schoolbook multiplication
// and division at every step (no Montgomery form), for moduli that may
// be even. The power table rows and working scratch are carved out of
// arena; w is supplied by the caller. Preconditions: mn > 0, m is odd-or-even but non-zero; a has an
// <= mn significant limbs; w has room for mn limbs.
//
// Grounded on the original ramp crate's ll::modpow::modpow (k=7):
// precompute a^0..a^(2^k-1) mod m once, then scan the exponent from the
// most-significant window down, squaring k times per window and
// folding in one table multiply when the window is nonzero.
func ModPow(w []limb.Word, m []limb.Word, mn int, a []limb.Word, an int, b []limb.Word, bn int, arena *arith.Scratch) {
	if mn <= 0 {
		panic("modpow: ModPow requires mn > 0")
	}
	mn = arith.Norm(m[:mn])

	if mn == 1 && m[0] == 1 {
		arith.Zero(w, len(w))
		return
	}

	expBitLength := arith.NumBaseDigits(b, bn)
	if expBitLength == 0 {
		arith.Zero(w, mn)
		w[0] = 1
		return
	}

	scratch := arena.Alloc(2 * mn)
	scratchQ := arena.Alloc(mn + 1)
	mulScratch := arena.Alloc(2 * mn)

	// The power table's rows are handed around as read-only cursors
	// rather than raw slices: every row but the base case a^1 is
	// produced once and only ever read back out during the windowed
	// scan below.
	const k = genericWindowBits
	tableSize := 1 << k
	table := make([]span.LimbSpan, tableSize)

	zeroth := arena.Alloc(mn)
	zeroth[0] = 1
	table[0] = span.NewLimbSpan(zeroth, mn)

	first := arena.Alloc(mn)
	arith.CopyIncr(first, a, an)
	table[1] = span.NewLimbSpan(first, mn)

	for i := 2; i < tableSize; i++ {
		next := arena.Alloc(mn)
		mul.MulRec(scratch, table[1].Raw(), mn, table[i-1].Raw(), mn, mulScratch)
		arith.DivRem(scratchQ, next, scratch, 2*mn, m, mn)
		table[i] = span.NewLimbSpan(next, mn)
	}

	arith.Zero(w, mn)
	w[0] = 1

	blockCount := (expBitLength + k - 1) / k
	for i := blockCount - 1; i >= 0; i-- {
		blockValue := 0
		for j := 0; j < k; j++ {
			p := i*k + j
			if p < expBitLength && bit(b, p) == 1 {
				blockValue |= 1 << uint(j)
			}
		}
		for s := 0; s < k; s++ {
			mul.SqrRec(scratch, w, mn, mulScratch)
			arith.DivRem(scratchQ, w, scratch, 2*mn, m, mn)
		}
		if blockValue != 0 {
			mul.MulRec(scratch, table[blockValue].Raw(), mn, w, mn, mulScratch)
			arith.DivRem(scratchQ, w, scratch, 2*mn, m, mn)
		}
	}
}
