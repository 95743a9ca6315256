package limb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulHiLo(t *testing.T) {
	cases := []struct {
		a, b   Word
		hi, lo Word
	}{
		{0, 0, 0, 0},
		{1, 1, 0, 1},
		{Max, Max, Max - 1, 1},
		{Max, 2, 1, Max - 1},
	}
	for _, c := range cases {
		hi, lo := MulHiLo(c.a, c.b)
		assert.Equal(t, c.hi, hi, "hi for %d*%d", c.a, c.b)
		assert.Equal(t, c.lo, lo, "lo for %d*%d", c.a, c.b)
	}
}

func TestAddOverflow(t *testing.T) {
	sum, carry := AddOverflow(Max, 1)
	assert.Equal(t, Word(0), sum)
	assert.True(t, carry)

	sum, carry = AddOverflow(1, 1)
	assert.Equal(t, Word(2), sum)
	assert.False(t, carry)
}

func TestSubOverflow(t *testing.T) {
	diff, borrow := SubOverflow(0, 1)
	assert.Equal(t, Max, diff)
	assert.True(t, borrow)

	diff, borrow = SubOverflow(5, 3)
	assert.Equal(t, Word(2), diff)
	assert.False(t, borrow)
}

func TestAddOverflowC(t *testing.T) {
	sum, c := AddOverflowC(Max, 0, 1)
	assert.Equal(t, Word(0), sum)
	assert.Equal(t, Word(1), c)

	sum, c = AddOverflowC(Max, Max, 1)
	assert.Equal(t, Max, sum)
	assert.Equal(t, Word(1), c)
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 0, BitLen(0))
	assert.Equal(t, 1, BitLen(1))
	assert.Equal(t, 8, BitLen(0xFF))
	assert.Equal(t, 64, BitLen(Max))
}
