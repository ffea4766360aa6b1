package bjpeg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleBlock() Block {
	var b Block
	for i := range b {
		// A smooth gradient plus a touch of variation, already level-shifted
		// into [-128, 127] as extraction would leave it.
		b[i] = int32((i%8)*4+(i/8)*3) - 64
	}
	return b
}

func TestDCTDirectDCIsScaledSum(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = 10
	}
	forwardDCTDirect(&b)
	// All-constant input has zero energy in every AC position and a DC
	// term equal to (1/4)*C(0)*C(0)*64*10 = (1/4)*(1/2)*640 = 80.
	assert.Equal(t, int32(80), b[0])
	for i := 1; i < 64; i++ {
		assert.InDelta(t, 0, b[i], 1)
	}
}

func TestDCTDirectAndSeparatedAgree(t *testing.T) {
	direct := sampleBlock()
	separated := sampleBlock()
	forwardDCTDirect(&direct)
	forwardDCTSeparated(&separated)
	assert.Equal(t, direct, separated)
}

func TestDCTVariantsAgreeAfterQuantization(t *testing.T) {
	table := BuildQuantTable(baseLuminanceTable, 50)

	direct := sampleBlock()
	forwardDCTDirect(&direct)
	wantQ := Quantize(DCTDirect, &direct, &table)

	arai := sampleBlock()
	forwardDCTArai(&arai)
	gotQ := Quantize(DCTArai, &arai, &table)

	assert.Equal(t, wantQ, gotQ, "Arai quantized coefficients must match the direct reference after scale compensation")
}

func TestAraiScaleVectorMatchesClosedForm(t *testing.T) {
	for k := 0; k < 8; k++ {
		want := math.Sqrt2 * dctC(k) * math.Cos(float64(k)*math.Pi/16)
		assert.InDelta(t, want, araiScale[k], 1e-12)
	}
}
