package bjpeg

// ColorSpace tags the planes held by an Image.
type ColorSpace int

const (
	// ColorSpaceYCbCr is three planes: luma, chroma-blue, chroma-red.
	ColorSpaceYCbCr ColorSpace = iota
	// ColorSpaceGray is a single luma plane with no chroma.
	ColorSpaceGray
)

// Subsample names the chroma subsampling used by an Image's Cb/Cr planes
// relative to its Y plane. Luma is always (1,1).
type Subsample int

const (
	// Subsample420 downsamples chroma by 2 horizontally and vertically.
	Subsample420 Subsample = iota
	// Subsample444 performs no chroma downsampling.
	Subsample444
)

func (s Subsample) factors() (sx, sy int) {
	if s == Subsample420 {
		return 2, 2
	}
	return 1, 1
}

// Plane is a rectangular grid of 8-bit samples plus the subsampling factors
// (relative to the image's luma plane) that produced it. Width and Height are
// already padded up to a multiple of 8, as required for block extraction.
type Plane struct {
	Width, Height int
	SX, SY        int
	Pix           []uint8 // row-major, stride == Width
}

// At returns the sample at (x, y), clamping out-of-range coordinates to the
// plane's edge. Block extraction reads Pix directly instead; the padded
// region it reads is filled by padEdges.
func (p *Plane) At(x, y int) uint8 {
	if x < 0 {
		x = 0
	} else if x >= p.Width {
		x = p.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= p.Height {
		y = p.Height - 1
	}
	return p.Pix[y*p.Width+x]
}

// newPlane allocates a plane of the given unpadded dimensions, rounding both
// up to the next multiple of 8 as required by the Image invariant (§3).
func newPlane(w, h, sx, sy int) *Plane {
	pw, ph := roundUp8(w), roundUp8(h)
	return &Plane{
		Width: pw, Height: ph,
		SX: sx, SY: sy,
		Pix: make([]uint8, pw*ph),
	}
}

func roundUp8(n int) int {
	return (n + 7) &^ 7
}

// roundUpMCU rounds n up to a multiple of 8*sx, the luma extent of one MCU
// cell along a given axis for chroma subsampling factor sx.
func roundUpMCU(n, sx int) int {
	unit := 8 * sx
	return ((n + unit - 1) / unit) * unit
}

// Image is the decoded raster the encoder core consumes: a triple of planes
// (Y, Cb, Cr — Cb and Cr are nil for ColorSpaceGray), a color-space tag, the
// original (pre-padding) dimensions, and the chosen chroma subsampling.
//
// An Image is created once (by RGBToImage or GrayToImage; the ppm package
// produces a Raster, not an Image) and is read-only for the remainder of
// the encode.
type Image struct {
	ColorSpace ColorSpace
	Subsample  Subsample
	Width      int // original width, before 8x8 MCU padding
	Height     int // original height, before 8x8 MCU padding
	Y          *Plane
	Cb         *Plane
	Cr         *Plane
}

// RGBToImage converts an interleaved 8-bit RGB raster (row-major, 3 bytes per
// pixel) into an Image with the given chroma subsampling, performing the
// color transform (§4.1) and, for Subsample420, chroma downsampling in the
// same pass.
func RGBToImage(rgb []uint8, width, height int, sub Subsample) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, formatErrorf("invalid image dimensions %dx%d", width, height)
	}
	if len(rgb) < width*height*3 {
		return nil, formatErrorf("rgb buffer too small: got %d bytes, want >= %d", len(rgb), width*height*3)
	}

	img := &Image{
		ColorSpace: ColorSpaceYCbCr,
		Subsample:  sub,
		Width:      width,
		Height:     height,
	}
	sx, sy := sub.factors()
	// The Y plane must be padded to a multiple of the MCU's luma extent
	// (16x16 for 4:2:0, 8x8 otherwise), since §4.2's block extractor walks
	// whole MCUs; Cb/Cr are padded to a multiple of 8 as usual.
	img.Y = newPlane(roundUpMCU(width, sx), roundUpMCU(height, sy), 1, 1)
	cw, ch := ceilDiv(width, sx), ceilDiv(height, sy)
	img.Cb = newPlane(cw, ch, sx, sy)
	img.Cr = newPlane(cw, ch, sx, sy)

	fillYCbCr(img, rgb, width, height)
	return img, nil
}

// GrayToImage wraps an 8-bit single-channel raster (row-major, 1 byte per
// pixel) into a grayscale Image. No color transform is needed.
func GrayToImage(gray []uint8, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, formatErrorf("invalid image dimensions %dx%d", width, height)
	}
	if len(gray) < width*height {
		return nil, formatErrorf("gray buffer too small: got %d bytes, want >= %d", len(gray), width*height)
	}

	img := &Image{
		ColorSpace: ColorSpaceGray,
		Subsample:  Subsample444,
		Width:      width,
		Height:     height,
	}
	img.Y = newPlane(width, height, 1, 1)
	for y := 0; y < height; y++ {
		copy(img.Y.Pix[y*img.Y.Width:y*img.Y.Width+width], gray[y*width:(y+1)*width])
	}
	// Pad-extend the right and bottom edges, matching block extraction's
	// edge-replication policy (§4.2) so DCT input beyond the image bounds is
	// not implicitly zero.
	padEdges(img.Y, width, height)
	return img, nil
}

// ceilDiv returns ceil(a/b) for positive a, b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// padEdges replicates the last valid column and row of p out to its full
// (8-aligned) Width/Height, per the edge-replication policy shared by §4.1
// (chroma downsampling) and §4.2 (block extraction).
func padEdges(p *Plane, validW, validH int) {
	if validW < p.Width {
		for y := 0; y < validH; y++ {
			row := p.Pix[y*p.Width : (y+1)*p.Width]
			last := row[validW-1]
			for x := validW; x < p.Width; x++ {
				row[x] = last
			}
		}
	}
	if validH < p.Height {
		lastRow := p.Pix[(validH-1)*p.Width : validH*p.Width]
		for y := validH; y < p.Height; y++ {
			copy(p.Pix[y*p.Width:(y+1)*p.Width], lastRow)
		}
	}
}
