package mandel

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// ColorFunc maps one iteration count to a color, given the frame's
// iteration cap. Implementations must be pure: Image calls a ColorFunc
// from a single goroutine but assumes repeated calls with the same inputs
// give the same color.
type ColorFunc func(iter, limit uint32) color.RGBA

// DefaultColors is the phase-shifted sinusoid palette: three sine waves a
// third of a period apart over the normalized count, black for points that
// reached the cap.
func DefaultColors(iter, limit uint32) color.RGBA {
	if iter >= limit {
		return color.RGBA{A: 0xFF}
	}
	t := float64(iter) / float64(limit)
	return color.RGBA{
		R: uint8(128 + 127*math.Sin(6.28318*t)),
		G: uint8(128 + 127*math.Sin(6.28318*t+2.09439)),
		B: uint8(128 + 127*math.Sin(6.28318*t+4.18879)),
		A: 0xFF,
	}
}

// Image renders buf through fn into an RGBA image.
// A nil fn uses DefaultColors. limit is the iteration cap the buffer was
// rendered with, typically Renderer.IterationCap().
func Image(buf *IterBuffer, limit uint32, fn ColorFunc) *image.RGBA {
	if fn == nil {
		fn = DefaultColors
	}

	img := image.NewRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	for y := 0; y < buf.Height(); y++ {
		row := buf.Row(y)
		for x, iter := range row {
			c := fn(iter, limit)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// SavePNG renders buf through fn and saves the result to a PNG file.
func SavePNG(path string, buf *IterBuffer, limit uint32, fn ColorFunc) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, Image(buf, limit, fn))
}
