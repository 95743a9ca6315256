// Package bigmath implements fast modular exponentiation for large
// integers: multi-limb multiplication (schoolbook and asymmetric
// Toom-22/Karatsuba), squaring, and Montgomery modular arithmetic
// driven by left-to-right fixed-window exponentiation. Operands and
// results cross this package's boundary as *big.Int; everything below
// the facade works over little-endian []limb.Word slices.
package bigmath

import (
	"math/big"

	"github.com/ramp-go/bigmath/internal/arith"
	"github.com/ramp-go/bigmath/internal/limb"
	"github.com/ramp-go/bigmath/internal/modpow"
	"github.com/ramp-go/bigmath/internal/montgomery"
	"github.com/ramp-go/bigmath/internal/mul"
)

// Modulus pre-optimizes an odd modulus for repeated Montgomery
// arithmetic: constructing one fixes R = B^limbs and computes the
// single-limb inverse Redc needs once, so every subsequent Mul, Sqr or
// Pow reuses it rather than recomputing it.
//
// Grounded on the original ramp crate's MtgyModulus (field layout
// modulus/modulus_inv0/limbs/r; see DESIGN.md).
type Modulus struct {
	modulus     *big.Int
	nWords      []limb.Word
	modulusInv0 limb.Word
	limbs       int
	r           *big.Int
}

// MontgomeryInt is a value already converted into Montgomery form
// relative to some Modulus. It is only ever meaningful paired with the
// Modulus that produced it; mixing values from two different Modulus
// values is a caller error the size checks below will usually, but not
// always, catch.
type MontgomeryInt struct {
	limbs []limb.Word
}

// NewModulus prepares n for Montgomery arithmetic. n must be odd and
// positive; NewModulus panics otherwise, since no Montgomery form
// exists for an even or non-positive modulus.
func NewModulus(n *big.Int) *Modulus {
	if n.Sign() <= 0 {
		panic("bigmath: modulus must be positive")
	}
	if n.Bit(0) == 0 {
		panic("bigmath: modulus must be odd")
	}

	limbs := (n.BitLen() + limb.Bits - 1) / limb.Bits
	if limbs == 0 {
		limbs = 1
	}

	r := new(big.Int).Lsh(big.NewInt(1), uint(limbs*limb.Bits))
	nWords := frombigInt(n, limbs)

	// modulus_inv0 = inv1(-n0 mod B). r is a multiple of B (limbs >=
	// 1), so (r-n) mod B == -n0 mod B: negating the low limb directly
	// is equivalent to, and cheaper than, computing r-n in full.
	modulusInv0 := montgomery.Inv1(-nWords[0])

	return &Modulus{
		modulus:     new(big.Int).Set(n),
		nWords:      nWords,
		modulusInv0: modulusInv0,
		limbs:       limbs,
		r:           r,
	}
}

// ToMontgomery converts a into its Montgomery representative ā = a*R
// mod n, zero-padded to exactly Modulus.limbs words.
func (m *Modulus) ToMontgomery(a *big.Int) *MontgomeryInt {
	aBar := new(big.Int).Mul(a, m.r)
	aBar.Mod(aBar, m.modulus)
	return &MontgomeryInt{limbs: frombigInt(aBar, m.limbs)}
}

// ToInt converts a Montgomery representative back to a plain integer,
// via a single Redc call against a zero-extended 2*limbs buffer (Redc
// of ā with the high half zero yields ā*R^-1 mod n == a directly).
func (m *Modulus) ToInt(a *MontgomeryInt) *big.Int {
	m.checkSize(a)
	t := make([]limb.Word, 2*m.limbs)
	copy(t, a.limbs)
	w := make([]limb.Word, m.limbs)
	montgomery.Redc(w, m.nWords, m.modulusInv0, t, m.limbs)
	return tobigInt(w)
}

// Mul computes the Montgomery representative of a*b mod n.
func (m *Modulus) Mul(a, b *MontgomeryInt) *MontgomeryInt {
	m.checkSize(a)
	m.checkSize(b)
	t := make([]limb.Word, 2*m.limbs)
	scratch := make([]limb.Word, 2*m.limbs)
	mul.MulRec(t, a.limbs, m.limbs, b.limbs, m.limbs, scratch)
	w := make([]limb.Word, m.limbs)
	montgomery.Redc(w, m.nWords, m.modulusInv0, t, m.limbs)
	return &MontgomeryInt{limbs: w}
}

// Sqr computes the Montgomery representative of a*a mod n.
func (m *Modulus) Sqr(a *MontgomeryInt) *MontgomeryInt {
	m.checkSize(a)
	t := make([]limb.Word, 2*m.limbs)
	scratch := make([]limb.Word, 2*m.limbs)
	mul.SqrRec(t, a.limbs, m.limbs, scratch)
	w := make([]limb.Word, m.limbs)
	montgomery.Redc(w, m.nWords, m.modulusInv0, t, m.limbs)
	return &MontgomeryInt{limbs: w}
}

// Pow computes the Montgomery representative of basis^e mod n. basis
// is expected in Montgomery form; e is a plain, non-negative exponent.
func (m *Modulus) Pow(basis *MontgomeryInt, e *big.Int) *MontgomeryInt {
	m.checkSize(basis)
	if e.Sign() < 0 {
		panic("bigmath: exponent must be non-negative")
	}

	// result must start life as the Montgomery representative of 1:
	// ModPowMontgomery only ever squares/multiplies it in place, it
	// never initializes it.
	result := m.ToMontgomery(big.NewInt(1))

	eWords := frombigInt(e, len(e.Bits()))
	arena := arith.NewScratch((1<<6 + 8) * m.limbs)
	modpow.ModPowMontgomery(result.limbs, m.nWords, m.modulusInv0, basis.limbs, eWords, len(eWords), m.limbs, arena)

	return result
}

func (m *Modulus) checkSize(a *MontgomeryInt) {
	if len(a.limbs) != m.limbs {
		panic("bigmath: MontgomeryInt size mismatch against Modulus")
	}
}

// Exp computes a^b mod m using plain schoolbook multiplication and
// division at every step, with no Montgomery form — the fallback for
// moduli that may be even, which Modulus's Montgomery path excludes by
// construction.
func Exp(a, b, m *big.Int) *big.Int {
	if m.Sign() == 0 {
		panic("bigmath: modulus must be non-zero")
	}
	if b.Sign() < 0 {
		panic("bigmath: exponent must be non-negative")
	}

	mAbs := new(big.Int).Abs(m)
	mn := (mAbs.BitLen() + limb.Bits - 1) / limb.Bits
	if mn == 0 {
		mn = 1
	}
	mWords := frombigInt(mAbs, mn)

	aMod := new(big.Int).Mod(a, mAbs)
	an := mn
	aWords := frombigInt(aMod, an)

	bWords := frombigInt(b, len(b.Bits()))

	out := make([]limb.Word, mn)
	arena := arith.NewScratch((1<<7 + 8) * mn)
	modpow.ModPow(out, mWords, mn, aWords, an, bWords, len(bWords), arena)

	return tobigInt(out)
}

// frombigInt converts a *big.Int to exactly n little-endian limb.Word
// words, zero-padded or truncated as needed. Grounded on the
// tobigInt/frombigInt pattern shown for bridging a []uint64 limb
// representation to math/big.Int (see DESIGN.md); this module commits
// to 64-bit limbs, so the big.Word-to-limb.Word cast is exact on the
// 64-bit platforms it targets.
func frombigInt(x *big.Int, n int) []limb.Word {
	bits := x.Bits()
	out := make([]limb.Word, n)
	for i := 0; i < len(bits) && i < n; i++ {
		out[i] = limb.Word(bits[i])
	}
	return out
}

// tobigInt converts little-endian limb.Word words to a *big.Int.
func tobigInt(words []limb.Word) *big.Int {
	bits := make([]big.Word, len(words))
	for i, w := range words {
		bits[i] = big.Word(w)
	}
	return new(big.Int).SetBits(bits)
}
