package bjpeg

import (
	"bufio"
	"io"
)

// Marker byte values from ITU-T T.81 Table B.1, the set this package's
// segment writer needs for a baseline sequential, non-hierarchical stream.
const (
	markerSOI  = 0xd8 // Start of Image
	markerEOI  = 0xd9 // End of Image
	markerAPP0 = 0xe0 // JFIF application segment
	markerDQT  = 0xdb // Define Quantization Table
	markerSOF0 = 0xc0 // Start of Frame, baseline DCT
	markerDHT  = 0xc4 // Define Huffman Table
	markerSOS  = 0xda // Start of Scan
)

// segmentWriter emits JPEG/JFIF marker segments. It follows the teacher's
// buffered-writer-plus-sticky-error pattern (w/err/buf fields, writeByte),
// generalized so the caller supplies however many quantization and Huffman
// tables the component count requires instead of the teacher's fixed four.
type segmentWriter struct {
	w   *bufio.Writer
	err error
	buf [32]byte
}

func newSegmentWriter(w io.Writer) *segmentWriter {
	return &segmentWriter{w: bufio.NewWriter(w)}
}

func (sw *segmentWriter) write(p []byte) {
	if sw.err != nil {
		return
	}
	_, sw.err = sw.w.Write(p)
}

func (sw *segmentWriter) writeByte(b byte) {
	if sw.err != nil {
		return
	}
	sw.err = sw.w.WriteByte(b)
}

func (sw *segmentWriter) flush() error {
	if sw.err == nil {
		sw.err = sw.w.Flush()
	}
	return sw.err
}

// writeMarker writes a bare 2-byte marker with no length/payload (SOI, EOI).
func (sw *segmentWriter) writeMarker(marker byte) {
	sw.buf[0], sw.buf[1] = 0xff, marker
	sw.write(sw.buf[:2])
}

// writeMarkerHeader writes the 4-byte marker+length header that precedes
// every segment's payload; length counts itself (2 bytes) plus the payload.
func (sw *segmentWriter) writeMarkerHeader(marker byte, length int) {
	sw.buf[0] = 0xff
	sw.buf[1] = marker
	sw.buf[2] = uint8(length >> 8)
	sw.buf[3] = uint8(length & 0xff)
	sw.write(sw.buf[:4])
}

// writeAPP0 writes the JFIF identification segment (§7): version 1.01, no
// thumbnail, density left as "no units / 1x1" since this encoder has no
// notion of physical pixel density.
func (sw *segmentWriter) writeAPP0() {
	sw.writeMarkerHeader(markerAPP0, 16)
	sw.write([]byte("JFIF\x00"))
	sw.write([]byte{1, 1}) // version 1.01
	sw.write([]byte{0})    // density units: none
	sw.write([]byte{0, 1}) // Xdensity
	sw.write([]byte{0, 1}) // Ydensity
	sw.write([]byte{0, 0}) // no embedded thumbnail
}

// writeDQT writes a single Define Quantization Table segment holding every
// table (table i gets id i), 8-bit precision, in zig-zag order.
func (sw *segmentWriter) writeDQT(tables []QuantTable) {
	length := 2
	for range tables {
		length += 1 + 64
	}
	sw.writeMarkerHeader(markerDQT, length)
	for i, t := range tables {
		sw.writeByte(byte(i))
		var zz [64]byte
		for natural, v := range t {
			zz[zigzag[natural]] = byte(v)
		}
		sw.write(zz[:])
	}
}

// frameComponent is one component's entry in the SOF0/SOS segments.
type frameComponent struct {
	id            byte
	hSamp, vSamp  byte // sampling factors; 1,1 unless this is luma under 4:2:0
	quantTableIdx byte
	dcTableIdx    byte
	acTableIdx    byte
}

// writeSOF0 writes the baseline Start of Frame segment (§7).
func (sw *segmentWriter) writeSOF0(width, height int, comps []frameComponent) {
	length := 8 + 3*len(comps)
	sw.writeMarkerHeader(markerSOF0, length)
	sw.writeByte(8) // sample precision
	sw.write([]byte{uint8(height >> 8), uint8(height & 0xff)})
	sw.write([]byte{uint8(width >> 8), uint8(width & 0xff)})
	sw.writeByte(byte(len(comps)))
	for _, c := range comps {
		sw.write([]byte{c.id, c.hSamp<<4 | c.vSamp, c.quantTableIdx})
	}
}

// writeDHT writes a single Define Huffman Table segment holding one table
// per (class, index, spec) triple, where class is 0 for DC tables and 1 for
// AC tables.
func (sw *segmentWriter) writeDHT(specs []struct {
	class byte
	index byte
	spec  huffmanSpec
}) {
	length := 2
	for _, s := range specs {
		length += 1 + 16 + len(s.spec.value)
	}
	sw.writeMarkerHeader(markerDHT, length)
	for _, s := range specs {
		sw.writeByte(s.class<<4 | s.index)
		sw.write(s.spec.count[:])
		sw.write(s.spec.value)
	}
}

// writeSOS writes the Start of Scan header; the entropy-coded bit stream
// that follows is written directly to sw.w by the caller via the
// bitWriter wrapping the same underlying writer.
func (sw *segmentWriter) writeSOS(comps []frameComponent) {
	length := 6 + 2*len(comps)
	sw.writeMarkerHeader(markerSOS, length)
	sw.writeByte(byte(len(comps)))
	for _, c := range comps {
		sw.write([]byte{c.id, c.dcTableIdx<<4 | c.acTableIdx})
	}
	sw.write([]byte{0, 63, 0}) // Ss, Se, Ah/Al: full spectral selection, no successive approximation
}
