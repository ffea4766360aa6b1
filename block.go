package bjpeg

// blockSize is the number of samples in an 8x8 block.
const blockSize = 64

// Block is an 8x8 array of signed integers in natural (row-major, not
// zig-zag) order. Before DCT, samples are level-shifted into [-128, 127];
// after DCT they are spectral coefficients; after quantization they are
// small signed integers.
type Block [blockSize]int32

// componentID identifies which plane a block was extracted from.
type componentID int

const (
	componentY componentID = iota
	componentCb
	componentCr
)

// MCUBlock pairs an extracted, level-shifted block with the component it
// came from, so downstream stages (quantizer, coefficient preprocessor) know
// which quantization and Huffman tables to apply.
type MCUBlock struct {
	Component componentID
	Block     Block
}

// ExtractBlocks partitions img into 8x8 blocks in MCU order (§3, §4.2):
//
//   - Subsample444/Gray: one block per component per 8x8 cell, raster order.
//   - Subsample420: four Y blocks (TL, TR, BL, BR of the 16x16 region)
//     followed by one Cb and one Cr block, per 16x16 MCU, raster order.
//
// Samples are level-shifted by -128 as they are extracted (§3, §9): this is
// the single place in the pipeline where that shift happens. Partial MCUs at
// the right/bottom edge read already-padded plane samples (§4.2), since
// Plane.Width/Height are rounded up to multiples of 8 by construction.
func ExtractBlocks(img *Image) []MCUBlock {
	if img.ColorSpace == ColorSpaceGray {
		return extractGray(img.Y)
	}
	if img.Subsample == Subsample444 {
		return extract444(img.Y, img.Cb, img.Cr)
	}
	return extract420(img.Y, img.Cb, img.Cr)
}

func extractGray(y *Plane) []MCUBlock {
	bw, bh := y.Width/8, y.Height/8
	out := make([]MCUBlock, 0, bw*bh)
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			out = append(out, MCUBlock{Component: componentY, Block: extractOne(y, bx*8, by*8)})
		}
	}
	return out
}

func extract444(y, cb, cr *Plane) []MCUBlock {
	bw, bh := y.Width/8, y.Height/8
	out := make([]MCUBlock, 0, bw*bh*3)
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			px, py := bx*8, by*8
			out = append(out,
				MCUBlock{Component: componentY, Block: extractOne(y, px, py)},
				MCUBlock{Component: componentCb, Block: extractOne(cb, px, py)},
				MCUBlock{Component: componentCr, Block: extractOne(cr, px, py)},
			)
		}
	}
	return out
}

func extract420(y, cb, cr *Plane) []MCUBlock {
	mw, mh := y.Width/16, y.Height/16
	out := make([]MCUBlock, 0, mw*mh*6)
	for my := 0; my < mh; my++ {
		for mx := 0; mx < mw; mx++ {
			px, py := mx*16, my*16
			out = append(out,
				MCUBlock{Component: componentY, Block: extractOne(y, px, py)},       // TL
				MCUBlock{Component: componentY, Block: extractOne(y, px+8, py)},     // TR
				MCUBlock{Component: componentY, Block: extractOne(y, px, py+8)},     // BL
				MCUBlock{Component: componentY, Block: extractOne(y, px+8, py+8)},   // BR
				MCUBlock{Component: componentCb, Block: extractOne(cb, mx*8, my*8)},
				MCUBlock{Component: componentCr, Block: extractOne(cr, mx*8, my*8)},
			)
		}
	}
	return out
}

// extractOne reads the 8x8 block with top-left corner (x0, y0) from p,
// level-shifting each sample by -128.
func extractOne(p *Plane, x0, y0 int) Block {
	var b Block
	for j := 0; j < 8; j++ {
		row := p.Pix[(y0+j)*p.Width+x0:]
		for i := 0; i < 8; i++ {
			b[8*j+i] = int32(row[i]) - 128
		}
	}
	return b
}
