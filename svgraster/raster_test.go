package svgraster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50">
<rect x="10" y="10" width="30" height="30" fill="#ff0000"/>
</svg>`

func TestPreviewSize(t *testing.T) {
	for _, c := range []struct {
		w, h         float64
		max          int
		wantW, wantH int
	}{
		{100, 50, 1024, 100, 50},
		{100, 50, 20, 20, 10},
		{2048, 4096, 1024, 512, 1024},
		{10.2, 0.1, 0, 11, 1},
	} {
		w, h := previewSize(c.w, c.h, c.max)
		if w != c.wantW || h != c.wantH {
			t.Errorf("previewSize(%v, %v, %d) = %d, %d", c.w, c.h, c.max, w, h)
		}
	}
}

func TestRasterSVGToImage(t *testing.T) {
	img, err := RasterSVGToImage(strings.NewReader(square), DefaultMaxSize)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 100, 50) {
		t.Fatalf("unexpected bounds %v", got)
	}
	red := color.RGBA{R: 0xff, A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if got := img.RGBAAt(25, 25); got != red {
		t.Errorf("expected red inside the rectangle, got %v", got)
	}
	if got := img.RGBAAt(80, 40); got != white {
		t.Errorf("expected white background, got %v", got)
	}

	small, err := RasterSVGToImage(strings.NewReader(square), 20)
	if err != nil {
		t.Fatal(err)
	}
	if got := small.Bounds(); got != image.Rect(0, 0, 20, 10) {
		t.Errorf("unexpected reduced bounds %v", got)
	}
}

func TestRasterSVGToImageErrors(t *testing.T) {
	if _, err := RasterSVGToImage(strings.NewReader(`<svg/>`), 0); !errors.Is(err, ErrEmptyViewport) {
		t.Errorf("expected an empty viewport error, got %v", err)
	}
	if _, err := RasterSVGToImage(strings.NewReader(`<svg viewBox="0 0 -100.0 -50.0"/>`), 0); !errors.Is(err, ErrEmptyViewport) {
		t.Errorf("expected an empty viewport error for a flipped viewBox, got %v", err)
	}
	if _, err := RasterSVGToImage(strings.NewReader(""), 0); err == nil {
		t.Error("expected an error for an empty document")
	}
}

func TestWritePNG(t *testing.T) {
	img, err := RasterSVGToImage(strings.NewReader(square), 0)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := WritePNG(&b, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("unexpected decoded bounds %v", decoded.Bounds())
	}
}
