package bjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		v    int32
		want uint8
	}{
		{0, 0},
		{1, 1}, {-1, 1},
		{2, 2}, {3, 2}, {-3, 2},
		{4, 3}, {7, 3},
		{255, 8}, {256, 9},
		{-256, 9},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, category(c.v), "category(%d)", c.v)
	}
}

func TestSignedBits(t *testing.T) {
	assert.Equal(t, uint32(0b101), signedBits(5, 3))
	// -5 in size 3: v-1 = -6, masked to 3 bits -> 0b010
	assert.Equal(t, uint32(0b010), signedBits(-5, 3))
}

func TestPreprocessBlockDCDiff(t *testing.T) {
	var coeffs [64]int32
	coeffs[0] = 40
	bc := preprocessBlock(&coeffs, 10)
	assert.Equal(t, int32(30), bc.dcDiff)
	assert.Equal(t, category(30), bc.dcCategory)
}

func TestPreprocessBlockRunsAndZRL(t *testing.T) {
	var coeffs [64]int32
	coeffs[0] = 0
	// 17 zeros then a nonzero: one ZRL (run 15) plus a run-1 event.
	coeffs[18] = 5
	bc := preprocessBlock(&coeffs, 0)
	if assert.Len(t, bc.ac, 2) {
		assert.Equal(t, uint8(15), bc.ac[0].runLength)
		assert.Equal(t, int32(0), bc.ac[0].value)
		assert.Equal(t, uint8(1), bc.ac[1].runLength)
		assert.Equal(t, int32(5), bc.ac[1].value)
	}
}

func TestPreprocessBlockAllZeroAC(t *testing.T) {
	var coeffs [64]int32
	coeffs[0] = 7
	bc := preprocessBlock(&coeffs, 0)
	assert.Empty(t, bc.ac)
	assert.Equal(t, 0, acRunLength(bc.ac))
}

func TestPreprocessBlockFullBlockNoEOBNeeded(t *testing.T) {
	var coeffs [64]int32
	for i := 1; i < 64; i++ {
		coeffs[i] = int32(i)
	}
	bc := preprocessBlock(&coeffs, 0)
	assert.Equal(t, 63, acRunLength(bc.ac))
}
