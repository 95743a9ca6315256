// Package montgomery implements Montgomery reduction (REDC) and the
// single-limb modular inverse it needs, the core Montgomery kernel the
// exponentiation drivers and facade build on.
package montgomery

import (
	"github.com/ramp-go/bigmath/internal/arith"
	"github.com/ramp-go/bigmath/internal/limb"
)

// Redc reduces the 2*limbs-limb value t modulo the limbs-limb odd
// modulus n, computing (t * R^-1) mod n where R = B^limbs, and stores
// the limbs-limb result in w. nInv0 must equal -(n[0]^-1) mod B (see
// Inv1). t is destroyed as scratch space.
//
// This is the CIOS (coarsely integrated operand scanning) form: each
// round adds a multiple of n chosen to zero t's next low limb, then
// shifts the window up by one limb; after limbs rounds the low half is
// all zero and the high half holds the (possibly one-over) result,
// resolved by a final conditional subtraction.
func Redc(w, n []limb.Word, nInv0 limb.Word, t []limb.Word, limbs int) {
	var carry limb.Word
	for i := 0; i < limbs; i++ {
		carry = 0
		m := t[i] * nInv0
		for j := 0; j < limbs; j++ {
			hi, lo := limb.MulHiLo(m, n[j])
			s, c1 := limb.AddOverflow(t[i+j], lo)
			s, c2 := limb.AddOverflow(s, carry)
			carry = hi
			if c1 {
				carry++
			}
			if c2 {
				carry++
			}
			t[i+j] = s
		}
		for j := i + limbs; j < 2*limbs; j++ {
			s, c := limb.AddOverflow(t[j], carry)
			t[j] = s
			if c {
				carry = 1
			} else {
				carry = 0
			}
		}
	}

	hi := t[limbs : 2*limbs]
	if carry > 0 || arith.Cmp(hi, n, limbs) >= 0 {
		arith.SubN(w, hi, n, limbs)
	} else {
		arith.CopyIncr(w, hi, limbs)
	}
}

// Inv1 computes x^-1 mod B by Hensel lifting, one bit at a time: it
// builds up y such that x*y == 1 (mod 2^i) for increasing i, correcting
// the top bit last since the loop only resolves bits 1..Bits-2. x
// must be odd (every modulus this module accepts is odd, so its low
// limb always is, and Redc's caller negates before inverting to obtain
// the -(n0^-1) mod B value Redc actually needs — see NewModulus).
func Inv1(x limb.Word) limb.Word {
	var y limb.Word = 1
	for i := uint(2); i < limb.Bits; i++ {
		if (limb.Word(1) << (i - 1)) < ((x * y) % (limb.Word(1) << i)) {
			y += limb.Word(1) << (i - 1)
		}
	}
	if (limb.Word(1) << (limb.Bits - 1)) < x*y {
		y += limb.Word(1) << (limb.Bits - 1)
	}
	return y
}
