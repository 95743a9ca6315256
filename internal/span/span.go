// Package span provides bounds-checked cursors over limb slices, the Go
// analogue of a pointer+offset+length triple that can be cheaply
// re-offset without reslicing boilerplate at every call site — Toom-22
// recursion, REDC staging, and power-table rows all hand these around.
package span

import "github.com/ramp-go/bigmath/internal/limb"

// debugSpans gates bounds assertions. Flip to false to let the dead
// branches fall out at compile time; there is no separate debug/release
// build mode in Go so a constant stands in for one.
const debugSpans = true

// LimbSpan is a read-only view over a contiguous run of limbs.
type LimbSpan struct {
	data []limb.Word
}

// NewLimbSpan wraps data as a read-only span over its first n limbs.
func NewLimbSpan(data []limb.Word, n int) LimbSpan {
	if debugSpans && n > len(data) {
		panic("span: length exceeds backing slice")
	}
	return LimbSpan{data: data[:n]}
}

// Len returns the number of limbs in the span.
func (s LimbSpan) Len() int { return len(s.data) }

// At returns the limb at index i.
func (s LimbSpan) At(i int) limb.Word {
	if debugSpans && (i < 0 || i >= len(s.data)) {
		panic("span: index out of range")
	}
	return s.data[i]
}

// Offset returns a new span starting at index i, running to the end of s.
func (s LimbSpan) Offset(i int) LimbSpan {
	if debugSpans && (i < 0 || i > len(s.data)) {
		panic("span: offset out of range")
	}
	return LimbSpan{data: s.data[i:]}
}

// Slice returns the sub-span [i:j).
func (s LimbSpan) Slice(i, j int) LimbSpan {
	if debugSpans && (i < 0 || j > len(s.data) || i > j) {
		panic("span: slice out of range")
	}
	return LimbSpan{data: s.data[i:j]}
}

// Raw exposes the backing slice. Callers must not retain it past the
// span's own lifetime expectations.
func (s LimbSpan) Raw() []limb.Word { return s.data }

// LimbSpanMut is a writable view over a contiguous run of limbs.
type LimbSpanMut struct {
	data []limb.Word
}

// NewLimbSpanMut wraps data as a writable span over its first n limbs.
func NewLimbSpanMut(data []limb.Word, n int) LimbSpanMut {
	if debugSpans && n > len(data) {
		panic("span: length exceeds backing slice")
	}
	return LimbSpanMut{data: data[:n]}
}

// Len returns the number of limbs in the span.
func (s LimbSpanMut) Len() int { return len(s.data) }

// At returns the limb at index i.
func (s LimbSpanMut) At(i int) limb.Word {
	if debugSpans && (i < 0 || i >= len(s.data)) {
		panic("span: index out of range")
	}
	return s.data[i]
}

// Set stores v at index i.
func (s LimbSpanMut) Set(i int, v limb.Word) {
	if debugSpans && (i < 0 || i >= len(s.data)) {
		panic("span: index out of range")
	}
	s.data[i] = v
}

// Offset returns a new span starting at index i, running to the end of s.
func (s LimbSpanMut) Offset(i int) LimbSpanMut {
	if debugSpans && (i < 0 || i > len(s.data)) {
		panic("span: offset out of range")
	}
	return LimbSpanMut{data: s.data[i:]}
}

// Slice returns the sub-span [i:j).
func (s LimbSpanMut) Slice(i, j int) LimbSpanMut {
	if debugSpans && (i < 0 || j > len(s.data) || i > j) {
		panic("span: slice out of range")
	}
	return LimbSpanMut{data: s.data[i:j]}
}

// AsConst returns a read-only view of the same backing storage.
func (s LimbSpanMut) AsConst() LimbSpan { return LimbSpan{data: s.data} }

// Raw exposes the backing slice. Callers must not retain it past the
// span's own lifetime expectations.
func (s LimbSpanMut) Raw() []limb.Word { return s.data }
