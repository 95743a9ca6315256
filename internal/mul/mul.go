// Package mul implements multi-limb multiplication: the single-limb
// kernels (Mul1/AddMul1/SubMul1), schoolbook basecase multiplication,
// and the asymmetric Toom-22 (Karatsuba) recursion with its unbalanced
// driver for operands of very different lengths.
//
// The recursive structure and the exact asymmetric split used here
// follow the original ramp crate's ll/mul.rs, since math/big's own
// nat.go karatsuba only handles same-length, power-of-two operands and
// doesn't cover the unbalanced case this package needs.
package mul

import (
	"github.com/ramp-go/bigmath/internal/arith"
	"github.com/ramp-go/bigmath/internal/limb"
)

// Toom22Threshold is the operand length (in limbs) at or below which
// Mul falls back to the quadratic basecase algorithm.
const Toom22Threshold = 20

// Mul1 multiplies the n least-significant limbs of x by v, storing the
// n least-significant limbs of the product in w. Returns the limb
// carried out of the top of the product. w and x may be the same slice
// or otherwise overlap only at offset zero.
func Mul1(w, x []limb.Word, n int, v limb.Word) limb.Word {
	if n <= 0 {
		panic("mul: Mul1 requires n > 0")
	}
	var c limb.Word
	for i := 0; i < n; i++ {
		hi, lo := limb.MulHiLo(x[i], v)
		sum, carry := limb.AddOverflowC(lo, c, 0)
		c = hi + carry
		w[i] = sum
	}
	return c
}

// AddMul1 multiplies the n least-significant limbs of x by v and adds
// the result into the n least-significant limbs of w in place. Returns
// the limb carried out of the top of the sum.
func AddMul1(w, x []limb.Word, n int, v limb.Word) limb.Word {
	if n <= 0 {
		panic("mul: AddMul1 requires n > 0")
	}
	var c limb.Word
	for i := 0; i < n; i++ {
		hi, lo := limb.MulHiLo(x[i], v)
		lo, carry1 := limb.AddOverflowC(lo, c, 0)
		c = hi + carry1
		sum, carry2 := limb.AddOverflowC(w[i], lo, 0)
		c += carry2
		w[i] = sum
	}
	return c
}

// SubMul1 multiplies the n least-significant limbs of x by v and
// subtracts the result from the n least-significant limbs of w in
// place. Returns the limb carried out of the top of the difference,
// adjusted for borrow.
func SubMul1(w, x []limb.Word, n int, v limb.Word) limb.Word {
	if n <= 0 {
		panic("mul: SubMul1 requires n > 0")
	}
	var c limb.Word
	for i := 0; i < n; i++ {
		hi, lo := limb.MulHiLo(x[i], v)
		lo, carry1 := limb.AddOverflowC(lo, c, 0)
		c = hi + carry1
		diff, borrow := limb.SubOverflow(w[i], lo)
		if borrow {
			c++
		}
		w[i] = diff
	}
	return c
}

// MulBasecase computes w = x*y by the schoolbook O(xs*ys) algorithm.
// Preconditions: xs >= ys > 0; w has room for xs+ys limbs and does not
// overlap x or y.
func MulBasecase(w, x []limb.Word, xs int, y []limb.Word, ys int) {
	if ys <= 0 {
		panic("mul: MulBasecase requires ys > 0")
	}
	w[xs] = Mul1(w, x, xs, y[0])
	for i := 1; i < ys; i++ {
		w[xs+i] = AddMul1(w[i:], x, xs, y[i])
	}
}

// Mul computes w = x*y. Preconditions: xs >= ys > 0; w has room for
// xs+ys limbs and does not overlap x or y.
func Mul(w, x []limb.Word, xs int, y []limb.Word, ys int) {
	if xs < ys {
		panic("mul: Mul requires xs >= ys")
	}
	if ys <= 0 {
		panic("mul: Mul requires ys > 0")
	}
	if ys <= Toom22Threshold {
		MulBasecase(w, x, xs, y, ys)
		return
	}
	scratch := make([]limb.Word, xs*2)
	if xs*2 >= ys*3 {
		MulUnbalanced(w, x, xs, y, ys, scratch)
	} else {
		MulToom22(w, x, xs, y, ys, scratch)
	}
}

// MulRec is the same dispatcher as Mul but takes caller-supplied
// scratch, for use inside Toom-22's own recursion and the Montgomery
// modpow driver's mul/sqr helpers.
func MulRec(w, x []limb.Word, xs int, y []limb.Word, ys int, scratch []limb.Word) {
	switch {
	case ys <= Toom22Threshold:
		MulBasecase(w, x, xs, y, ys)
	case xs*2 >= ys*3:
		MulUnbalanced(w, x, xs, y, ys, scratch)
	default:
		MulToom22(w, x, xs, y, ys, scratch)
	}
}

// MulToom22 computes w = x*y using an asymmetric two-way (Toom-22 /
// Karatsuba) split. Preconditions: xs >= ys && xs < 2*ys. scratch must
// have room for at least 2*xs limbs (the caller-level Mul sizes it
// that way so nested recursive calls always have enough).
//
// Split x into x1,x0 and y into y1,y0 with x = x1*B^nl + x0, y = y1*B^nl
// + y0. Then x*y = B^2nl*z2 + B^nl*(z0+z2-z1) + z0, where z0=x0*y0,
// z2=x1*y1, and z1=(x1-x0)*(y1-y0). z1 is computed via its absolute
// value and a separately tracked sign, since limbs can't represent a
// negative partial product.
func MulToom22(w, x []limb.Word, xs int, y []limb.Word, ys int, scratch []limb.Word) {
	if !(xs >= ys && xs < ys*2) {
		panic("mul: MulToom22 requires xs >= ys && xs < ys*2")
	}

	xh := xs >> 1
	nl := xs - xh
	yh := ys - nl

	if !(0 < xh && xh <= nl) {
		panic("mul: MulToom22 invariant violated: 0 < xh <= nl")
	}
	if !(0 < yh && yh <= xh) {
		panic("mul: MulToom22 invariant violated: 0 < yh <= xh")
	}

	x0, x1 := x[:nl], x[nl:nl+xh]
	y0, y1 := y[:nl], y[nl:nl+yh]

	zx1 := w[:nl]
	zy1 := w[nl : 2*nl]
	z1Neg := false

	if nl == xh {
		if arith.Cmp(x0, x1, nl) < 0 {
			arith.SubN(zx1, x1, x0, nl)
			z1Neg = true
		} else {
			arith.SubN(zx1, x0, x1, nl)
		}
	} else { // nl > xh
		if arith.IsZero(x0[xh:], nl-xh) && arith.Cmp(x0, x1, xh) < 0 {
			arith.SubN(zx1, x1, x0, xh)
			arith.Zero(zx1[xh:], nl-xh)
			z1Neg = true
		} else {
			arith.Sub(zx1, x0, nl, x1, xh)
		}
	}

	if nl == yh {
		if arith.Cmp(y0, y1, nl) < 0 {
			arith.SubN(zy1, y1, y0, nl)
			z1Neg = !z1Neg
		} else {
			arith.SubN(zy1, y0, y1, nl)
		}
	} else { // nl > yh
		if arith.IsZero(y0[yh:], nl-yh) && arith.Cmp(y0, y1, yh) < 0 {
			arith.SubN(zy1, y1, y0, yh)
			arith.Zero(zy1[yh:], nl-yh)
			z1Neg = !z1Neg
		} else {
			arith.Sub(zy1, y0, nl, y1, yh)
		}
	}

	z0 := w
	z1 := scratch
	z2 := w[2*nl:]
	scratchOut := scratch[2*nl:]

	MulRec(z1, zx1, nl, zy1, nl, scratchOut)
	MulRec(z0, x0, nl, y0, nl, scratchOut)
	MulRec(z2, x1, xh, y1, yh, scratchOut)

	// {w, xs+ys} currently holds z0 in [0,2nl) and z2 in [2nl, xs+ys).
	// Fold in the cross terms; order of carry application matters.
	cy := arith.AddN(w[2*nl:2*nl+nl], z2, z0[nl:2*nl], nl)
	cy2 := cy + arith.AddN(w[nl:2*nl], z0, z2, nl)
	cy = cy + arith.Add(w[2*nl:2*nl+nl], z2, nl, z2[nl:], yh+xh-nl)

	if z1Neg {
		cy += arith.AddN(w[nl:nl+2*nl], w[nl:nl+2*nl], z1, 2*nl)
	} else {
		cy -= arith.SubN(w[nl:nl+2*nl], w[nl:nl+2*nl], z1, 2*nl)
	}

	arith.Incr(w[2*nl:], cy2)
	arith.Incr(w[3*nl:], cy)
}

// MulUnbalanced handles multiplication when xs is much bigger than ys,
// the way Mul1 handles a single-limb y but generalized to ys limbs:
// slide a ys-limb window across x, accumulating each partial product.
// Precondition: xs > ys. scratch must have room for 2*xs limbs.
func MulUnbalanced(w, x []limb.Word, xs int, y []limb.Word, ys int, scratch []limb.Word) {
	if xs <= ys {
		panic("mul: MulUnbalanced requires xs > ys")
	}

	MulToom22(w, x, ys, y, ys, scratch)

	xs -= ys
	x = x[ys:]
	w = w[ys:]

	wTmp := make([]limb.Word, ys*3)

	for xs >= ys*2 {
		MulToom22(wTmp, x, ys, y, ys, scratch)
		xs -= ys
		x = x[ys:]
		cy := arith.AddN(w, w, wTmp, ys)
		arith.CopyIncr(w[ys:], wTmp[ys:], ys)
		arith.Incr(w[ys:], cy)
		w = w[ys:]
	}

	if xs >= ys {
		MulRec(wTmp, x, xs, y, ys, scratch)
	} else {
		MulRec(wTmp, y, ys, x, xs, scratch)
	}

	cy := arith.AddN(w, w, wTmp, ys)
	arith.CopyIncr(w[ys:], wTmp[ys:], xs)
	arith.Incr(w[ys:], cy)
}
