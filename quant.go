package bjpeg

// zigzag maps natural row-major index -> zig-zag scan position (§4.4, per
// the JPEG Annex A ordering that groups coefficients by ascending spatial
// frequency).
var zigzag = [64]int{
	0, 1, 5, 6, 14, 15, 27, 28,
	2, 4, 7, 13, 16, 26, 29, 42,
	3, 8, 12, 17, 25, 30, 41, 43,
	9, 11, 18, 24, 31, 40, 44, 53,
	10, 19, 23, 32, 39, 45, 52, 54,
	20, 22, 33, 38, 46, 51, 55, 60,
	21, 34, 37, 47, 50, 56, 59, 61,
	35, 36, 48, 49, 57, 58, 62, 63,
}

// baseLuminanceTable and baseChrominanceTable are the standard Annex K.1/K.2
// quantization tables at quality 50, in natural (row-major) order.
var baseLuminanceTable = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var baseChrominanceTable = [64]int{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// QuantTable is a quality-scaled quantization table in natural (row-major)
// order, ready to divide DCT coefficients for one component.
type QuantTable [64]int32

// BuildQuantTable scales base by quality in [1, 100] per the standard IJG
// formula (§4.4):
//
//	scale    = quality<50 ? 5000/quality : 200 - 2*quality
//	entry'   = clamp((entry*scale + 50) / 100, 1, 255)
//
// quality is clamped to [1, 100] before use.
func BuildQuantTable(base [64]int, quality int) QuantTable {
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}
	var scale int
	if quality < 50 {
		scale = 5000 / quality
	} else {
		scale = 200 - 2*quality
	}

	var t QuantTable
	for i, entry := range base {
		v := (entry*scale + 50) / 100
		if v < 1 {
			v = 1
		} else if v > 255 {
			v = 255
		}
		t[i] = int32(v)
	}
	return t
}

// quantize divides every coefficient of b (in natural order) by table and
// rounds half-away-from-zero, then permutes the result into zig-zag order
// (§4.4). It is used by the direct and separated DCT variants, whose output
// is already in the same units as table.
func quantize(b *Block, table *QuantTable) [64]int32 {
	var out [64]int32
	for i := 0; i < 64; i++ {
		out[zigzag[i]] = int32(divRound(int(b[i]), int(table[i])))
	}
	return out
}

// quantizeArai is quantize's counterpart for DCTArai output: every
// coefficient at natural-order row m, column n carries an extra
// 8*araiScale[m]*araiScale[n] factor dct_arai.go deliberately left
// unresolved (the 8 coming from each of the two 1-D passes contributing a
// 2*sqrt(2) factor), so the effective divisor for that position is
// table[i]*araiAdjust[m][n] instead of table[i] alone (§9).
func quantizeArai(b *Block, table *QuantTable) [64]int32 {
	var out [64]int32
	for i := 0; i < 64; i++ {
		m, n := i/8, i%8
		divisor := float64(table[i]) * araiAdjust[m][n]
		out[zigzag[i]] = int32(roundHalfAwayFromZeroF(float64(b[i]) / divisor))
	}
	return out
}

// Quantize dispatches to quantize or quantizeArai depending on which
// forward-DCT variant produced b, returning quantized coefficients in
// zig-zag order.
func Quantize(variant DCTVariant, b *Block, table *QuantTable) [64]int32 {
	if variant == DCTArai {
		return quantizeArai(b, table)
	}
	return quantize(b, table)
}

// divRound divides a by b and rounds half-away-from-zero.
func divRound(a, b int) int {
	if (a < 0) != (b < 0) {
		return -divRoundPositive(-a, b)
	}
	return divRoundPositive(a, b)
}

func divRoundPositive(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	return (a + b/2) / b
}
