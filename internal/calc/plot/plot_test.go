package plot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicspectra/internal/calc/spectrum"
)

func TestWritePNG(t *testing.T) {
	c, err := spectrum.Generate(spectrum.NewParams(0.5031, 5, 0.05, 0.4, 2.0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, c, Options{Title: "NSM-22 | MANAGUA | Soil C"}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())

	var red, black int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			switch {
			case r>>8 == 220 && g>>8 == 20 && bl>>8 == 20:
				red++
			case r == 0 && g == 0 && bl == 0:
				black++
			}
		}
	}
	assert.Greater(t, red, 100)
	assert.Greater(t, black, 100)
}

func TestRenderRejectsShortCurve(t *testing.T) {
	_, err := Render(spectrum.Curve{}, Options{})
	assert.Error(t, err)
}

func TestNiceCeil(t *testing.T) {
	assert.Equal(t, 1.0, niceCeil(0))
	assert.Equal(t, 2.0, niceCeil(1.32))
	assert.InDelta(t, 0.5, niceCeil(0.41), 1e-12)
	assert.Equal(t, 10.0, niceCeil(7))
}
