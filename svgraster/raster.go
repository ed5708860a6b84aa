// Implements a raster preview of SVG documents,
// by wrapping oksvg and rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// DefaultMaxSize bounds the longest side of a preview, in pixels.
const DefaultMaxSize = 1024

// ErrEmptyViewport is returned when the viewBox has no positive area,
// as happens for documents scaled by a zero or negative factor.
var ErrEmptyViewport = errors.New("svg has an empty viewport")

// previewSize returns the image size for a w x h viewport,
// shrunk so that no side exceeds maxSize.
func previewSize(w, h float64, maxSize int) (int, int) {
	if maxSize > 0 {
		if m := math.Max(w, h); m > float64(maxSize) {
			w, h = w*float64(maxSize)/m, h*float64(maxSize)/m
		}
	}
	return int(math.Max(1, math.Ceil(w))), int(math.Max(1, math.Ceil(h)))
}

// RasterSVGToImage renders the SVG document read from src on a white
// background. The image has the size of the viewBox (or of the
// width and height attributes), reduced to fit in maxSize pixels.
// A non positive maxSize disables the reduction.
func RasterSVGToImage(src io.Reader, maxSize int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(src, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	vb := icon.ViewBox
	if !(vb.W > 0 && vb.H > 0) {
		return nil, ErrEmptyViewport
	}
	w, h := previewSize(vb.W, vb.H, maxSize)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
