package bjpeg

import (
	"io"
	"runtime"
	"sync"
)

// DefaultQuality mirrors the teacher's constant of the same name and the
// same value; it is a widely used default across JPEG encoders generally.
const DefaultQuality = 75

// Options are the encoding parameters for Encode. A nil *Options is
// equivalent to &Options{} with every field at its zero value, which Encode
// replaces with the defaults documented on each field.
type Options struct {
	// Quality is 1-100 inclusive, higher is better. Zero selects
	// DefaultQuality.
	Quality int

	// DCT selects which forward-DCT implementation encodes each block.
	// Zero value is DCTDirect.
	DCT DCTVariant

	// Workers bounds how many goroutines run the DCT/quantization stage
	// concurrently. Zero or negative selects runtime.NumCPU().
	Workers int
}

func (o *Options) quality() int {
	if o == nil || o.Quality == 0 {
		return DefaultQuality
	}
	return clampQuality(o.Quality)
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

func (o *Options) dctVariant() DCTVariant {
	if o == nil {
		return DCTDirect
	}
	return o.DCT
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		n := runtime.NumCPU()
		if n < 1 {
			n = 1
		}
		return n
	}
	return o.Workers
}

// Encode writes img to w as a baseline sequential sJPEG/JFIF stream (§1, §7)
// at the given options. The pipeline follows §2's stage order: block
// extraction, then a concurrent DCT+quantization stage over independent
// blocks, then a serial coefficient-preprocessing and entropy-coding stage
// that must see blocks in MCU order to track per-component DC prediction.
func Encode(w io.Writer, img *Image, o *Options) error {
	quality := o.quality()
	variant := o.dctVariant()

	lumaQuant := BuildQuantTable(baseLuminanceTable, quality)
	chromaQuant := BuildQuantTable(baseChrominanceTable, quality)

	blocks := ExtractBlocks(img)
	quantized := quantizeAll(blocks, variant, &lumaQuant, &chromaQuant, o.workers())

	coeffs, lumaDCFreq, lumaACFreq, chromaDCFreq, chromaACFreq := preprocessAll(blocks, quantized)

	lumaDC := BuildHuffmanTable(lumaDCFreq)
	lumaAC := BuildHuffmanTable(lumaACFreq)
	chromaDC := BuildHuffmanTable(chromaDCFreq)
	chromaAC := BuildHuffmanTable(chromaACFreq)

	sw := newSegmentWriter(w)
	sw.writeMarker(markerSOI)
	sw.writeAPP0()
	sw.writeDQT([]QuantTable{lumaQuant, chromaQuant})

	comps := frameComponents(img)
	sw.writeSOF0(img.Width, img.Height, comps)
	dht := []struct {
		class byte
		index byte
		spec  huffmanSpec
	}{
		{0, 0, lumaDC.spec()},
		{1, 0, lumaAC.spec()},
		{0, 1, chromaDC.spec()},
		{1, 1, chromaAC.spec()},
	}
	if img.ColorSpace == ColorSpaceGray {
		// A grayscale frame uses only the luma tables; its chroma tables
		// would hold no codes, which decoders reject.
		dht = dht[:2]
	}
	sw.writeDHT(dht)
	sw.writeSOS(comps)
	if sw.err != nil {
		return ioError(sw.err)
	}

	bw := newBitWriter(sw.w)
	for _, mb := range coeffs {
		switch mb.component {
		case componentY:
			emitBlock(bw, lumaDC, lumaAC, mb.coeffs)
		default:
			emitBlock(bw, chromaDC, chromaAC, mb.coeffs)
		}
	}
	if err := bw.flush(); err != nil {
		return ioError(err)
	}

	sw.writeMarker(markerEOI)
	if err := sw.flush(); err != nil {
		return ioError(err)
	}
	return nil
}

// quantizeAll runs forward DCT + quantization over every block, split
// across o.workers() goroutines by simple index striping: block i's work
// is independent of every other block's, so no synchronization is needed
// beyond the final WaitGroup join (§2, §9).
func quantizeAll(blocks []MCUBlock, variant DCTVariant, lumaQuant, chromaQuant *QuantTable, workers int) [][64]int32 {
	out := make([][64]int32, len(blocks))
	if workers > len(blocks) {
		workers = len(blocks)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(blocks); i += workers {
				b := blocks[i].Block
				variant.ForwardDCT(&b)
				table := lumaQuant
				if blocks[i].Component != componentY {
					table = chromaQuant
				}
				out[i] = Quantize(variant, &b, table)
			}
		}(worker)
	}
	wg.Wait()
	return out
}

// mcuCoeffs pairs a block's preprocessed coefficients with the component
// they belong to, in the same MCU order ExtractBlocks produced.
type mcuCoeffs struct {
	component componentID
	coeffs    blockCoeffs
}

// preprocessAll walks blocks/quantized in MCU order, maintaining one DC
// predictor per component (§5), and accumulates Huffman symbol frequencies
// for the four tables a 4:2:0 or 4:4:4 baseline image needs. Cb and Cr
// each keep their own DC predictor, but share one frequency histogram per
// §9, since this encoder writes a single chroma DC table and a single
// chroma AC table for both.
func preprocessAll(blocks []MCUBlock, quantized [][64]int32) (out []mcuCoeffs, lumaDCFreq, lumaACFreq, chromaDCFreq, chromaACFreq map[byte]int) {
	out = make([]mcuCoeffs, len(blocks))
	lumaDCFreq, lumaACFreq = map[byte]int{}, map[byte]int{}
	chromaDCFreq, chromaACFreq = map[byte]int{}, map[byte]int{}

	var prevDC [3]int32 // indexed by componentID
	for i, mb := range blocks {
		bc := preprocessBlock(&quantized[i], prevDC[mb.Component])
		prevDC[mb.Component] = quantized[i][0]
		out[i] = mcuCoeffs{component: mb.Component, coeffs: bc}

		dcFreq, acFreq := lumaDCFreq, lumaACFreq
		if mb.Component != componentY {
			dcFreq, acFreq = chromaDCFreq, chromaACFreq
		}
		dcFreq[bc.dcCategory]++
		for _, e := range bc.ac {
			acFreq[byte(e.runLength<<4|category(e.value))]++
		}
		if acRunLength(bc.ac) < 63 {
			acFreq[acEOB]++
		}
	}
	return out, lumaDCFreq, lumaACFreq, chromaDCFreq, chromaACFreq
}

// frameComponents builds the SOF0/SOS component table for img: a single
// 1x1 luma component for grayscale, three components with Y's sampling
// factors reflecting the chosen chroma subsampling otherwise.
func frameComponents(img *Image) []frameComponent {
	if img.ColorSpace == ColorSpaceGray {
		return []frameComponent{
			{id: 1, hSamp: 1, vSamp: 1, quantTableIdx: 0, dcTableIdx: 0, acTableIdx: 0},
		}
	}
	hy, vy := byte(1), byte(1)
	if img.Subsample == Subsample420 {
		hy, vy = 2, 2
	}
	return []frameComponent{
		{id: 1, hSamp: hy, vSamp: vy, quantTableIdx: 0, dcTableIdx: 0, acTableIdx: 0},
		{id: 2, hSamp: 1, vSamp: 1, quantTableIdx: 1, dcTableIdx: 1, acTableIdx: 1},
		{id: 3, hSamp: 1, vSamp: 1, quantTableIdx: 1, dcTableIdx: 1, acTableIdx: 1},
	}
}
