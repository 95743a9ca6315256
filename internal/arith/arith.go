// Package arith implements the low-level limb-array primitives this
// module's higher layers consume as external collaborators: addition,
// subtraction, comparison, copying, zeroing and long division over
// []limb.Word, plus a scratch-buffer arena for their temporaries.
//
// These routines mirror the calling convention math/big's nat.go uses
// throughout (destination first, explicit lengths, a returned
// carry/borrow Word), reconstructed from nat.go's call-sites
// (addVV/subVV/cmp/etc.), since nat.go calls out to an arith.go of its
// own that isn't reproduced here.
package arith

import "github.com/ramp-go/bigmath/internal/limb"

// AddN computes w = x + y over n limbs and returns the carry out.
func AddN(w, x, y []limb.Word, n int) limb.Word {
	var c limb.Word
	for i := 0; i < n; i++ {
		w[i], c = limb.AddOverflowC(x[i], y[i], c)
	}
	return c
}

// SubN computes w = x - y over n limbs and returns the borrow out.
func SubN(w, x, y []limb.Word, n int) limb.Word {
	var b limb.Word
	for i := 0; i < n; i++ {
		w[i], b = limb.SubOverflowB(x[i], y[i], b)
	}
	return b
}

// Add computes w = x + y where x has xs limbs and y has ys limbs
// (xs >= ys), returning the final carry. w must have room for xs limbs.
func Add(w, x []limb.Word, xs int, y []limb.Word, ys int) limb.Word {
	if xs < ys {
		panic("arith: Add requires xs >= ys")
	}
	c := AddN(w, x, y, ys)
	for i := ys; i < xs; i++ {
		w[i], c = limb.AddOverflowC(x[i], 0, c)
	}
	return c
}

// Sub computes w = x - y where x has xs limbs and y has ys limbs
// (xs >= ys), returning the final borrow. w must have room for xs limbs.
func Sub(w, x []limb.Word, xs int, y []limb.Word, ys int) limb.Word {
	if xs < ys {
		panic("arith: Sub requires xs >= ys")
	}
	b := SubN(w, x, y, ys)
	for i := ys; i < xs; i++ {
		w[i], b = limb.SubOverflowB(x[i], 0, b)
	}
	return b
}

// Incr adds carry into dst in place, propagating as far as needed.
// Preconditions: carry is 0 or 1; dst is long enough to absorb it
// (callers size scratch buffers with one spare limb for this).
func Incr(dst []limb.Word, carry limb.Word) {
	for i := 0; carry != 0; i++ {
		if i >= len(dst) {
			panic("arith: Incr overflowed destination")
		}
		dst[i], carry = limb.AddOverflowC(dst[i], 0, carry)
	}
}

// Cmp compares x and y, both of length n, returning -1, 0 or +1.
func Cmp(x, y []limb.Word, n int) int {
	for i := n - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CopyIncr copies n limbs from src to dst.
func CopyIncr(dst, src []limb.Word, n int) {
	copy(dst[:n], src[:n])
}

// Zero clears the first n limbs of dst.
func Zero(dst []limb.Word, n int) {
	z := dst[:n]
	for i := range z {
		z[i] = 0
	}
}

// IsZero reports whether all of the first n limbs of src are zero.
func IsZero(src []limb.Word, n int) bool {
	for i := 0; i < n; i++ {
		if src[i] != 0 {
			return false
		}
	}
	return true
}

// Norm returns the normalized length of x: the number of limbs after
// dropping leading (high-order) zero limbs.
func Norm(x []limb.Word) int {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return n
}

// NumBaseDigits returns the number of base-2 digits (the bit length) of
// the n-limb value x, i.e. 0 for the zero value.
func NumBaseDigits(x []limb.Word, n int) int {
	n = Norm(x[:n])
	if n == 0 {
		return 0
	}
	return (n-1)*limb.Bits + limb.BitLen(x[n-1])
}
