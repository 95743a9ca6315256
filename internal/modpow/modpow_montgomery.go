package modpow

import (
	"github.com/ramp-go/bigmath/internal/arith"
	"github.com/ramp-go/bigmath/internal/limb"
	"github.com/ramp-go/bigmath/internal/montgomery"
	"github.com/ramp-go/bigmath/internal/mul"
	"github.com/ramp-go/bigmath/internal/span"
)

// montgomeryWindowBits is the fixed window width k used by the
// Montgomery driver.
const montgomeryWindowBits = 6

// mtgyMul computes wp = REDC(a*b) in place, for Montgomery-form
// operands a, b against odd modulus n.
func mtgyMul(wp []limb.Word, limbs int, a, b, n []limb.Word, nInv0 limb.Word, t, mulScratch []limb.Word) {
	mul.MulRec(t, a, limbs, b, limbs, mulScratch)
	montgomery.Redc(wp, n, nInv0, t, limbs)
}

// mtgySqr computes wp = REDC(a*a) in place.
func mtgySqr(wp []limb.Word, limbs int, a, n []limb.Word, nInv0 limb.Word, t, mulScratch []limb.Word) {
	mul.SqrRec(t, a, limbs, mulScratch)
	montgomery.Redc(wp, n, nInv0, t, limbs)
}

// ModPowMontgomery computes w = a^b mod n entirely in Montgomery form:
// a must already be the Montgomery representative ā = a*R mod n, and w
// must already hold the Montgomery representative of 1 (the facade's
// ToMontgomery(1)) on entry — this function only ever squares and
// multiplies it in place, it never initializes it, so a zero-length
// exponent correctly leaves w as Montgomery-one without any special
// case. The result left in w is likewise Montgomery-form; the facade
// is responsible for the to_mtgy/to_int conversions around this call.
// n must be odd; nInv0 is -(n[0]^-1) mod B (see montgomery.Inv1).
//
// Grounded on the original ramp crate's ll::mtgy::modpow (k=6):
// identical structure to the generic driver's windowed scan, but every
// multiply/square is a Montgomery multiply (mul.MulRec/SqrRec followed
// by montgomery.Redc) instead of a plain multiply-then-divide.
func ModPowMontgomery(w []limb.Word, n []limb.Word, nInv0 limb.Word, a []limb.Word, b []limb.Word, bn int, limbs int, arena *arith.Scratch) {
	if limbs <= 0 {
		panic("modpow: ModPowMontgomery requires limbs > 0")
	}

	expBitLength := arith.NumBaseDigits(b, bn)

	t := arena.Alloc(2*limbs + 1)
	mulScratch := arena.Alloc(2 * limbs)

	const k = montgomeryWindowBits
	tableSize := 1 << k
	table := make([]span.LimbSpan, tableSize)

	zeroth := arena.Alloc(limbs)
	zeroth[0] = 1
	table[0] = span.NewLimbSpan(zeroth, limbs)

	first := arena.Alloc(limbs)
	arith.CopyIncr(first, a, limbs)
	table[1] = span.NewLimbSpan(first, limbs)

	for i := 2; i < tableSize; i++ {
		next := arena.Alloc(limbs)
		mtgyMul(next, limbs, table[1].Raw(), table[i-1].Raw(), n, nInv0, t, mulScratch)
		table[i] = span.NewLimbSpan(next, limbs)
	}

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
			mtgySqr(w, limbs, w, n, nInv0, t, mulScratch)
		}
		if blockValue != 0 {
			mtgyMul(w, limbs, w, table[blockValue].Raw(), n, nInv0, t, mulScratch)
		}
	}
}
