package colortemp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorChannels(t *testing.T) {
	c := ARGB(0x80, 0x12, 0x34, 0x56)
	assert.Equal(t, Color(0x80123456), c)
	assert.Equal(t, uint8(0x80), c.A())
	assert.Equal(t, uint8(0x12), c.R())
	assert.Equal(t, uint8(0x34), c.G())
	assert.Equal(t, uint8(0x56), c.B())
	assert.Equal(t, "#123456", c.Hex())
	assert.Equal(t, "#80123456", c.String())
	assert.Equal(t, Color(0xff123456), c.WithAlpha(0xff))
}

func TestColorHSV(t *testing.T) {
	for _, c := range []Color{White, Black, RGB(255, 0, 0), ToColor(4500), ToColor(9000)} {
		assert.Equal(t, c, FromHSV(c.HSV()), "color %s", c)
	}

	hsv := White.HSV()
	assert.InDelta(t, 0.0, hsv[1], 1e-9)
	assert.InDelta(t, 1.0, hsv[2], 1e-9)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffdabb")
	require.NoError(t, err)
	assert.Equal(t, RGB(255, 218, 187), c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	_, err = ParseHex("orange")
	assert.Error(t, err)
}
