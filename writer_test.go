package bjpeg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentWriterMarkerSOI(t *testing.T) {
	var buf bytes.Buffer
	sw := newSegmentWriter(&buf)
	sw.writeMarker(markerSOI)
	require.NoError(t, sw.flush())
	assert.Equal(t, []byte{0xff, 0xd8}, buf.Bytes())
}

func TestSegmentWriterAPP0Length(t *testing.T) {
	var buf bytes.Buffer
	sw := newSegmentWriter(&buf)
	sw.writeAPP0()
	require.NoError(t, sw.flush())
	b := buf.Bytes()
	assert.Equal(t, byte(0xff), b[0])
	assert.Equal(t, byte(markerAPP0), b[1])
	length := int(b[2])<<8 | int(b[3])
	assert.Equal(t, 16, length)
	assert.Equal(t, "JFIF\x00", string(b[4:9]))
}

func TestSegmentWriterDQTZigzagOrder(t *testing.T) {
	var buf bytes.Buffer
	sw := newSegmentWriter(&buf)
	table := BuildQuantTable(baseLuminanceTable, 50)
	sw.writeDQT([]QuantTable{table})
	require.NoError(t, sw.flush())
	b := buf.Bytes()
	payload := b[5:] // skip marker(2)+length(2)+table index(1)
	for natural, v := range table {
		assert.Equal(t, byte(v), payload[zigzag[natural]])
	}
}

func TestSegmentWriterSOF0Dimensions(t *testing.T) {
	var buf bytes.Buffer
	sw := newSegmentWriter(&buf)
	comps := []frameComponent{{id: 1, hSamp: 2, vSamp: 2, quantTableIdx: 0}}
	sw.writeSOF0(300, 200, comps)
	require.NoError(t, sw.flush())
	b := buf.Bytes()
	assert.Equal(t, byte(markerSOF0), b[1])
	assert.Equal(t, byte(8), b[4]) // precision
	height := int(b[5])<<8 | int(b[6])
	width := int(b[7])<<8 | int(b[8])
	assert.Equal(t, 200, height)
	assert.Equal(t, 300, width)
	assert.Equal(t, byte(1), b[9]) // component count
}

func TestFrameComponentsGraySingleComponent(t *testing.T) {
	img, err := GrayToImage(make([]byte, 8*8), 8, 8)
	require.NoError(t, err)
	comps := frameComponents(img)
	assert.Len(t, comps, 1)
	assert.Equal(t, byte(1), comps[0].hSamp)
	assert.Equal(t, byte(1), comps[0].vSamp)
}

func TestFrameComponents420LumaSampling(t *testing.T) {
	img, err := RGBToImage(make([]byte, 16*16*3), 16, 16, Subsample420)
	require.NoError(t, err)
	comps := frameComponents(img)
	assert.Len(t, comps, 3)
	assert.Equal(t, byte(2), comps[0].hSamp)
	assert.Equal(t, byte(2), comps[0].vSamp)
	assert.Equal(t, byte(1), comps[1].hSamp)
	assert.Equal(t, byte(1), comps[2].hSamp)
}
