// Package plot renders the response spectrum as a PNG chart.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"nicspectra/internal/calc/spectrum"
)

const (
	Width  = 1000
	Height = 500

	marginLeft   = 70
	marginRight  = 30
	marginTop    = 50
	marginBottom = 55
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorGrid       = color.RGBA{220, 220, 220, 255}
	colorAxis       = color.RGBA{60, 60, 60, 255}
	ColorElastic    = color.RGBA{0, 0, 0, 255}
	ColorDesign     = color.RGBA{220, 20, 20, 255}
)

var (
	titleFont     *truetype.Font
	titleFontErr  error
	titleFontOnce sync.Once
)

func titleFace(size float64) font.Face {
	titleFontOnce.Do(func() {
		titleFont, titleFontErr = freetype.ParseFont(goregular.TTF)
	})
	if titleFontErr != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(titleFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Options label the chart.
type Options struct {
	Title string
}

type frame struct {
	img        *image.RGBA
	tMax, yMax float64
}

func (f frame) x(t float64) int {
	w := float64(Width - marginLeft - marginRight)
	return marginLeft + int(math.Round(t/f.tMax*w))
}

func (f frame) y(v float64) int {
	h := float64(Height - marginTop - marginBottom)
	return Height - marginBottom - int(math.Round(v/f.yMax*h))
}

// Render draws the elastic (black) and design (red) curves over a grid.
func Render(c spectrum.Curve, opts Options) (*image.RGBA, error) {
	if len(c.Points) < 2 {
		return nil, fmt.Errorf("plot: curve has %d points", len(c.Points))
	}
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{colorBackground}, image.Point{}, draw.Src)

	peakE, peakD := c.Peak()
	f := frame{
		img:  img,
		tMax: c.Points[len(c.Points)-1].T,
		yMax: niceCeil(math.Max(peakE, peakD) * 1.1),
	}
	if f.tMax <= 0 {
		f.tMax = 1
	}

	drawGrid(f)
	drawPolyline(f, c.Points, func(p spectrum.Point) float64 { return p.Elastic }, ColorElastic)
	drawPolyline(f, c.Points, func(p spectrum.Point) float64 { return p.Design }, ColorDesign)

	drawText(img, titleFace(18), marginLeft, 30, opts.Title, colorAxis)
	drawText(img, basicfont.Face7x13, Width/2-30, Height-12, "Periodo T (s)", colorAxis)
	drawText(img, basicfont.Face7x13, 8, marginTop-10, "Sa (g)", colorAxis)
	drawLegend(img)
	return img, nil
}

// WritePNG renders the curve and encodes it to w.
func WritePNG(w io.Writer, c spectrum.Curve, opts Options) error {
	img, err := Render(c, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func drawGrid(f frame) {
	left, right := marginLeft, Width-marginRight
	top, bottom := marginTop, Height-marginBottom

	for t := 0.0; t <= f.tMax+1e-9; t += 0.5 {
		x := f.x(t)
		vline(f.img, x, top, bottom, colorGrid)
		drawText(f.img, basicfont.Face7x13, x-8, bottom+16, fmt.Sprintf("%.1f", t), colorAxis)
	}
	step := f.yMax / 5
	for i := 0; i <= 5; i++ {
		v := step * float64(i)
		y := f.y(v)
		hline(f.img, left, right, y, colorGrid)
		drawText(f.img, basicfont.Face7x13, 18, y+4, fmt.Sprintf("%.2f", v), colorAxis)
	}
	hline(f.img, left, right, bottom, colorAxis)
	vline(f.img, left, top, bottom, colorAxis)
}

func drawLegend(img *image.RGBA) {
	x, y := Width-marginRight-170, marginTop+15
	for i, e := range []struct {
		label string
		col   color.RGBA
	}{
		{"Espectro elastico", ColorElastic},
		{"Espectro de diseno", ColorDesign},
	} {
		yy := y + i*18
		for dy := -1; dy <= 1; dy++ {
			hline(img, x, x+30, yy+dy, e.col)
		}
		drawText(img, basicfont.Face7x13, x+38, yy+4, e.label, colorAxis)
	}
}

func drawPolyline(f frame, pts []spectrum.Point, value func(spectrum.Point) float64, col color.RGBA) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := f.x(pts[i-1].T), f.y(value(pts[i-1]))
		x1, y1 := f.x(pts[i].T), f.y(value(pts[i]))
		line(f.img, x0, y0, x1, y1, col)
		line(f.img, x0, y0+1, x1, y1+1, col)
	}
}

// line is Bresenham's algorithm.
func line(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func hline(img *image.RGBA, x0, x1, y int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, col)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, col color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, col)
	}
}

func drawText(img *image.RGBA, face font.Face, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(v))
	base := math.Pow(10, exp)
	for _, m := range []float64{1, 2, 5, 10} {
		if m*base >= v {
			return m * base
		}
	}
	return 10 * base
}
