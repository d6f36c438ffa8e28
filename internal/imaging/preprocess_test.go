package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestPreprocessBinarizesAtThreshold(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.Set(0, 0, color.Gray{Y: 0})   // well below
	src.Set(1, 0, color.Gray{Y: 127}) // just below the cut-point
	src.Set(2, 0, color.Gray{Y: 128}) // exactly at it

	got := Preprocess(src)

	want := []uint8{0, 0, 255}
	for x, w := range want {
		if y := got.GrayAt(x, 0).Y; y != w {
			t.Errorf("pixel %d: got %d, want %d", x, y, w)
		}
	}
}

func TestPreprocessOutputIsBinary(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 100, A: 255})
		}
	}

	got := Preprocess(src)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if v := got.GrayAt(x, y).Y; v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 or 255", x, y, v)
			}
		}
	}
}

func TestPreprocessClampsLongerSide(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8000, 2000))

	got := Preprocess(src)

	b := got.Bounds()
	if b.Dx() != 4000 || b.Dy() != 1000 {
		t.Fatalf("bounds = %dx%d, want 4000x1000", b.Dx(), b.Dy())
	}
}

func TestPreprocessKeepsSmallImages(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4000, 300))

	got := Preprocess(src)

	b := got.Bounds()
	if b.Dx() != 4000 || b.Dy() != 300 {
		t.Fatalf("bounds = %dx%d, want unchanged 4000x300", b.Dx(), b.Dy())
	}
}

func TestDecodeValidPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(&buf); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	if err == nil {
		t.Fatal("Decode() expected error for garbage input")
	}
}
