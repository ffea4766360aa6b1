package bjpeg

import "math"

// araiScale is the classic Arai-Agui-Nakajima per-coefficient scale factor
// (the same constants published in Pennebaker & Mitchell figure 4-8 and
// carried into every derived "AAN fast DCT" implementation since): it is
//
//	araiScale[k] = sqrt(2) * C(k) * cos(k*pi/16)
//
// 1-D DCT with the butterfly in dctArai1D produces, for each axis, a result
// that is 2*sqrt(2)*araiScale[k] times too large relative to dct1D's output. The
// quantization step (quant.go) divides it back out, combined across both
// axes, by pre-scaling the quantization table with araiAdjust.
var araiScale [8]float64

// araiAdjust[m][n] is the per-coefficient factor the Arai quantization path
// uses in place of s[m]*s[n] from §9: multiplying the quantization table
// element-wise by araiAdjust undoes exactly the scaling dctArai1D
// introduces on each of the two passes, so Arai's quantized output matches
// forwardDCTDirect's and forwardDCTSeparated's for every input block.
//
// Each 1-D pass scales its axis by 2*sqrt(2)*araiScale[k], not araiScale[k]
// alone — dctArai1D's butterfly carries the same doubling the direct DCT's
// 0.5 factor normally divides away, plus the sqrt(2) folded into z2/z4's
// constants. Two passes (rows then columns) therefore compound to
// (2*sqrt(2))^2 == 8 times araiScale[m]*araiScale[n].
var araiAdjust [8][8]float64

func init() {
	for k := 0; k < 8; k++ {
		araiScale[k] = math.Sqrt2 * dctC(k) * math.Cos(float64(k)*math.Pi/16)
	}
	for m := 0; m < 8; m++ {
		for n := 0; n < 8; n++ {
			araiAdjust[m][n] = 8 * araiScale[m] * araiScale[n]
		}
	}
}

// forwardDCTArai computes the 2-D DCT with the Arai fast 1-D butterfly
// applied to rows then columns (§4.3). Its output is not directly
// comparable to forwardDCTDirect's: every coefficient carries an extra
// 8*araiScale[row]*araiScale[col] factor (araiAdjust) that must be divided back out during
// quantization (see quantizeArai in quant.go).
func forwardDCTArai(b *Block) {
	var rows [8][8]float64
	for y := 0; y < 8; y++ {
		var in, out [8]float64
		for x := 0; x < 8; x++ {
			in[x] = float64(b[8*y+x])
		}
		dctArai1D(&in, &out)
		rows[y] = out
	}

	var cols [8][8]float64
	for m := 0; m < 8; m++ {
		var in, out [8]float64
		for y := 0; y < 8; y++ {
			in[y] = rows[y][m]
		}
		dctArai1D(&in, &out)
		for n := 0; n < 8; n++ {
			cols[n][m] = out[n]
		}
	}

	for n := 0; n < 8; n++ {
		for m := 0; m < 8; m++ {
			b[8*n+m] = int32(roundHalfAwayFromZeroF(cols[n][m]))
		}
	}
}

// dctArai1D is the Arai-Agui-Nakajima fast 1-D DCT-II: 5 multiplications and
// 29 additions, versus 8 multiplications per output (64 total) for the
// direct kernel. Its output equals 2*sqrt(2)*dct1D(in)[k]*araiScale[k]; that
// per-axis factor is absorbed during quantization rather than here (see
// araiAdjust), which is the entire point of deferring it: every multiply
// not done here is one the quantizer was going to do anyway.
func dctArai1D(in, out *[8]float64) {
	x0, x7 := in[0]+in[7], in[0]-in[7]
	x1, x6 := in[1]+in[6], in[1]-in[6]
	x2, x5 := in[2]+in[5], in[2]-in[5]
	x3, x4 := in[3]+in[4], in[3]-in[4]

	t10, t13 := x0+x3, x0-x3
	t11, t12 := x1+x2, x1-x2

	out[0] = t10 + t11
	out[4] = t10 - t11

	z1 := (t12 + t13) * 0.7071067811865476 // cos(pi/4)
	out[2] = t13 + z1
	out[6] = t13 - z1

	u10, u11, u12 := x4+x5, x5+x6, x6+x7

	z5 := (u10 - u12) * 0.38268343236508984 // sin(pi/8)
	z2 := 0.5411961001461971*u10 + z5       // sqrt(2)*sin(pi/8)
	z4 := 1.3065629648763766*u12 + z5       // sqrt(2)*cos(pi/8)
	z3 := u11 * 0.7071067811865476

	z11, z13 := x7+z3, x7-z3

	out[5] = z13 + z2
	out[3] = z13 - z2
	out[1] = z11 + z4
	out[7] = z11 - z4
}
