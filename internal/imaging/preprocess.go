package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// ErrPreprocessing wraps decode/transform failures on the way into OCR.
var ErrPreprocessing = errors.New("image preprocessing failed")

const (
	// luminanceThreshold is a hard contrast boost: pixels below it go black,
	// the rest white. OCR accuracy on scanned medical documents depends on
	// this exact cut-point staying at 128.
	luminanceThreshold = 128

	// maxDimension caps the longer side of an image before recognition.
	maxDimension = 4000
)

// Decode reads and decodes a JPEG or PNG image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrPreprocessing, err)
	}
	return img, nil
}

// Preprocess normalizes a raster image for OCR: single-channel luminance,
// hard binary threshold at 128, and a downscale so the longer side does not
// exceed 4000 px. It never fails on a decoded image.
func Preprocess(img image.Image) *image.Gray {
	return clampSize(binarize(img))
}

func binarize(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			lum := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if lum < luminanceThreshold {
				out.SetGray(x, y, color.Gray{Y: 0})
			} else {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

func clampSize(img *image.Gray) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longer := w
	if h > w {
		longer = h
	}
	if longer <= maxDimension {
		return img
	}
	ratio := float64(maxDimension) / float64(longer)
	dw := int(float64(w) * ratio)
	dh := int(float64(h) * ratio)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewGray(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
