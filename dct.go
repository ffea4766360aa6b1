package bjpeg

import "math"

// DCTVariant selects which of the three interchangeable forward-DCT
// implementations (§4.3) Encode uses (Options.DCT). The choice is a build/run-time
// configuration; all three are mathematically equivalent once quantization
// has absorbed any implementation-specific scaling (§9).
type DCTVariant int

const (
	// DCTDirect evaluates the full double sum over a precomputed cosine
	// table. Simple and cache-friendly; serves as the correctness reference.
	DCTDirect DCTVariant = iota

	// DCTSeparated performs eight 1-D DCTs along rows, then eight along
	// columns, relying on separability of the 2-D kernel.
	DCTSeparated

	// DCTArai is the Arai-Agui-Nakajima fast 1-D DCT applied by rows then
	// columns. Its output is pre-scaled (§9); quantization must use a
	// correspondingly adjusted table (see araiAdjust in dct_arai.go and
	// quantizeArai in quant.go).
	DCTArai
)

func (v DCTVariant) String() string {
	switch v {
	case DCTDirect:
		return "direct"
	case DCTSeparated:
		return "separated"
	case DCTArai:
		return "arai"
	default:
		return "unknown"
	}
}

// ForwardDCT applies v to b in place, overwriting b's spatial samples with
// DCT coefficients in natural (not zig-zag) order.
func (v DCTVariant) ForwardDCT(b *Block) {
	switch v {
	case DCTSeparated:
		forwardDCTSeparated(b)
	case DCTArai:
		forwardDCTArai(b)
	default:
		forwardDCTDirect(b)
	}
}

// dctC is the JPEG DCT-II basis normalization constant C(k): 1/sqrt(2) for
// k=0, 1 otherwise (§4.3).
func dctC(k int) float64 {
	if k == 0 {
		return 1 / math.Sqrt2
	}
	return 1
}

// cosTable[x][k] is cos((2x+1)*k*pi/16), the kernel shared by every 1-D DCT-II
// pass in this package (direct's double sum and separated's two single
// sums both index into it).
var cosTable [8][8]float64

func init() {
	for x := 0; x < 8; x++ {
		for k := 0; k < 8; k++ {
			cosTable[x][k] = math.Cos(float64(2*x+1) * float64(k) * math.Pi / 16)
		}
	}
}

// dct1D computes one 1-D DCT-II transform of 8 samples:
//
//	T(k) = (1/2) * C(k) * sum_x in[x] * cos((2x+1)k*pi/16)
//
// forwardDCTSeparated applies it twice (rows, then columns);
// forwardDCTDirect does not call it but expands the same kernel inline from
// cosTable. The two differ only in floating-point summation order, so their
// 2-D results agree up to tiny rounding error before the final rounding to
// integers.
func dct1D(in *[8]float64, out *[8]float64) {
	for k := 0; k < 8; k++ {
		sum := 0.0
		for x := 0; x < 8; x++ {
			sum += in[x] * cosTable[x][k]
		}
		out[k] = 0.5 * dctC(k) * sum
	}
}
