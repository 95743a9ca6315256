package mul

import (
	"github.com/ramp-go/bigmath/internal/arith"
	"github.com/ramp-go/bigmath/internal/limb"
)

// Sqr squares the xs-limb value x, storing the 2*xs-limb result in w.
// w must not overlap x. Above the threshold it uses SqrToom2, whose
// cross term x0*x1 is computed directly, with no sign to track.
func Sqr(w, x []limb.Word, xs int) {
	if xs <= 0 {
		panic("mul: Sqr requires xs > 0")
	}
	if xs <= Toom22Threshold {
		MulBasecase(w, x, xs, x, xs)
		return
	}
	scratch := make([]limb.Word, xs*2)
	SqrToom2(w, x, xs, scratch)
}

// SqrRec is the recursive dispatcher SqrToom2 uses internally, taking
// caller-supplied scratch.
func SqrRec(w, x []limb.Word, xs int, scratch []limb.Word) {
	if xs < Toom22Threshold {
		MulBasecase(w, x, xs, x, xs)
		return
	}
	SqrToom2(w, x, xs, scratch)
}

// SqrToom2 squares x using a two-way split: x = x1*B^xl + x0 gives
// x*x = B^2xl*z2 + 2*B^xl*z1 + z0, where z0=x0*x0, z1=x0*x1, z2=x1*x1.
// z1 needs no sign tracking, unlike Toom-22 multiplication's cross term.
func SqrToom2(w, x []limb.Word, xs int, scratch []limb.Word) {
	xh := xs >> 1
	xl := xs - xh

	x0, x1 := x[:xl], x[xl:xs]

	z0 := w
	z1 := scratch
	z2 := w[2*xl:]
	scratchOut := scratch[2*xl:]

	MulRec(z1, x0, xl, x1, xh, scratchOut)
	SqrRec(z0, x0, xl, scratchOut)
	SqrRec(z2, x1, xh, scratchOut)

	cy := arith.AddN(z1, z1, z1, xs)
	cy += arith.AddN(w[xl:xl+xs], w[xl:xl+xs], z1, xs)
	arith.Incr(w[xl+xs:], cy)
}
