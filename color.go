package bjpeg

// fillYCbCr performs the RGB->YCbCr color transform (§4.1) over every pixel
// of an interleaved width*height*3 RGB raster, writing into img's Y/Cb/Cr
// planes and performing chroma downsampling in the same pass for Subsample420.
//
// Y, Cb and Cr are stored unsigned in [0, 255]; chroma carries the usual
// JFIF +128 bias so that all three planes share the same unsigned range
// before the level shift applied immediately before DCT (§3, §9).
func fillYCbCr(img *Image, rgb []uint8, width, height int) {
	// Full-resolution Y plane, computed directly.
	for y := 0; y < height; y++ {
		srcRow := rgb[y*width*3 : (y+1)*width*3]
		dstRow := img.Y.Pix[y*img.Y.Width:]
		for x := 0; x < width; x++ {
			r, g, b := srcRow[3*x+0], srcRow[3*x+1], srcRow[3*x+2]
			dstRow[x] = rgbToY(r, g, b)
		}
	}
	padEdges(img.Y, width, height)

	if img.Subsample == Subsample444 {
		for y := 0; y < height; y++ {
			srcRow := rgb[y*width*3 : (y+1)*width*3]
			cbRow, crRow := img.Cb.Pix[y*img.Cb.Width:], img.Cr.Pix[y*img.Cr.Width:]
			for x := 0; x < width; x++ {
				r, g, b := srcRow[3*x+0], srcRow[3*x+1], srcRow[3*x+2]
				cbRow[x], crRow[x] = rgbToCbCr(r, g, b)
			}
		}
		padEdges(img.Cb, width, height)
		padEdges(img.Cr, width, height)
		return
	}

	// 4:2:0: average each 2x2 source rectangle into one chroma sample,
	// replicating the last row/column first so edge rectangles average
	// real samples instead of implicit zeros (§4.1, §4.2).
	cw, ch := ceilDiv(width, 2), ceilDiv(height, 2)
	for cy := 0; cy < ch; cy++ {
		y0, y1 := 2*cy, 2*cy+1
		if y1 >= height {
			y1 = height - 1
		}
		row0 := rgb[y0*width*3:]
		row1 := rgb[y1*width*3:]
		cbRow, crRow := img.Cb.Pix[cy*img.Cb.Width:], img.Cr.Pix[cy*img.Cr.Width:]
		for cx := 0; cx < cw; cx++ {
			x0, x1 := 2*cx, 2*cx+1
			if x1 >= width {
				x1 = width - 1
			}
			cb00, cr00 := rgbToCbCr(row0[3*x0+0], row0[3*x0+1], row0[3*x0+2])
			cb01, cr01 := rgbToCbCr(row0[3*x1+0], row0[3*x1+1], row0[3*x1+2])
			cb10, cr10 := rgbToCbCr(row1[3*x0+0], row1[3*x0+1], row1[3*x0+2])
			cb11, cr11 := rgbToCbCr(row1[3*x1+0], row1[3*x1+1], row1[3*x1+2])
			cbRow[cx] = average4(cb00, cb01, cb10, cb11)
			crRow[cx] = average4(cr00, cr01, cr10, cr11)
		}
	}
	padEdges(img.Cb, cw, ch)
	padEdges(img.Cr, cw, ch)
}

func average4(a, b, c, d uint8) uint8 {
	sum := int(a) + int(b) + int(c) + int(d)
	return uint8(roundHalfAwayFromZero(sum, 4))
}

// rgbToY computes Y = 0.299R + 0.587G + 0.114B, rounded half-away-from-zero.
func rgbToY(r, g, b uint8) uint8 {
	const scale = 1 << 16
	y := 19595*int(r) + 38470*int(g) + 7471*int(b)
	return clampSample(roundHalfAwayFromZero(y, scale))
}

// rgbToCbCr computes the chroma pair with the standard +128 JFIF bias.
func rgbToCbCr(r, g, b uint8) (cb, cr uint8) {
	const scale = 1 << 16
	ri, gi, bi := int(r), int(g), int(b)
	cbv := (-11058*ri - 21710*gi + 32768*bi) + (128 * scale)
	crv := (32768*ri - 27439*gi - 5329*bi) + (128 * scale)
	return clampSample(roundHalfAwayFromZero(cbv, scale)), clampSample(roundHalfAwayFromZero(crv, scale))
}

// roundHalfAwayFromZero returns round(num/den), rounding ties away from
// zero, for a positive den.
func roundHalfAwayFromZero(num, den int) int {
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}

func clampSample(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
