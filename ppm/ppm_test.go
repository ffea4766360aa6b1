package ppm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeP6Binary(t *testing.T) {
	header := "P6\n2 2\n255\n"
	pix := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	r, err := Decode(strings.NewReader(header + string(pix)))
	require.NoError(t, err)
	assert.Equal(t, ColorRGB, r.Space)
	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, pix, r.Pix)
}

func TestDecodeP5BinaryGray(t *testing.T) {
	header := "P5\n3 1\n255\n"
	pix := []byte{10, 20, 30}
	r, err := Decode(strings.NewReader(header + string(pix)))
	require.NoError(t, err)
	assert.Equal(t, ColorGray, r.Space)
	assert.Equal(t, pix, r.Pix)
}

func TestDecodeP3ASCIIRGB(t *testing.T) {
	input := "P3\n2 1\n255\n255 0 0  0 255 0\n"
	r, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, ColorRGB, r.Space)
	assert.Equal(t, []byte{255, 0, 0, 0, 255, 0}, r.Pix)
}

func TestDecodeP2ASCIIGray(t *testing.T) {
	input := "P2\n4 1\n255\n0 85 170 255\n"
	r, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, ColorGray, r.Space)
	assert.Equal(t, []byte{0, 85, 170, 255}, r.Pix)
}

func TestDecodeSkipsCommentLines(t *testing.T) {
	input := "P5\n# a comment\n2 2\n# another\n255\n\x01\x02\x03\x04"
	r, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, []byte{1, 2, 3, 4}, r.Pix)
}

func TestDecodeRescalesNonStandardMaxval(t *testing.T) {
	input := "P2\n2 1\n15\n0 15\n"
	r, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, byte(0), r.Pix[0])
	assert.Equal(t, byte(255), r.Pix[1])
}

func TestDecodeRejectsUnknownMagic(t *testing.T) {
	_, err := Decode(strings.NewReader("P9\n1 1\n255\n\x00"))
	assert.Error(t, err)
}

func TestDecodeRejectsZeroDimensions(t *testing.T) {
	_, err := Decode(strings.NewReader("P5\n0 1\n255\n"))
	assert.Error(t, err)
}

func TestDecodeRejectsMaxvalOutOfRange(t *testing.T) {
	_, err := Decode(strings.NewReader("P5\n1 1\n65536\n\x00\x00"))
	assert.Error(t, err)
}

func TestDecodeP5SixteenBitBigEndian(t *testing.T) {
	// maxval 65535: samples 0x0000, 0x8000, 0xffff -> 0, 128 (rounded), 255.
	header := "P5\n3 1\n65535\n"
	raw := []byte{0x00, 0x00, 0x80, 0x00, 0xff, 0xff}
	r, err := Decode(strings.NewReader(header + string(raw)))
	require.NoError(t, err)
	assert.Equal(t, ColorGray, r.Space)
	assert.Equal(t, []byte{0, 128, 255}, r.Pix)
}

func TestDecodeP3SixteenBitASCII(t *testing.T) {
	header := "P3\n1 1\n65535\n"
	input := header + "0 32768 65535\n"
	r, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, ColorRGB, r.Space)
	assert.Equal(t, []byte{0, 128, 255}, r.Pix)
}

func TestDecodeRejectsTruncatedPixelData(t *testing.T) {
	_, err := Decode(strings.NewReader("P5\n2 2\n255\n\x01\x02"))
	assert.Error(t, err)
}

func TestDecodeRejectsASCIISampleOutOfRange(t *testing.T) {
	_, err := Decode(strings.NewReader("P2\n1 1\n255\n256\n"))
	assert.Error(t, err)
}
