package pdf

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// fakeRunner plays the part of pdftoppm: it writes one PNG per page under
// the prefix passed as the last argument, with the page index encoded in the
// top-left pixel.
type fakeRunner struct {
	pages int
	err   error
	calls int
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls++
	if f.err != nil {
		return nil, []byte("render error"), f.err
	}
	prefix := args[len(args)-1]
	for i := 1; i <= f.pages; i++ {
		img := image.NewGray(image.Rect(0, 0, 1, 1))
		img.SetGray(0, 0, color.Gray{Y: uint8(i)})
		out, err := os.Create(fmt.Sprintf("%s-%d.png", prefix, i))
		if err != nil {
			return nil, nil, err
		}
		if err := png.Encode(out, img); err != nil {
			return nil, nil, err
		}
		if err := out.Close(); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func newTestRasterizer(runner Runner, pages int, countErr error) *Rasterizer {
	r := NewRasterizer(Config{}, nil)
	r.runner = runner
	r.pageCount = func(string) (int, error) { return pages, countErr }
	return r
}

func TestRasterizeOrdersPagesNumerically(t *testing.T) {
	// 12 pages: a lexical sort would put page-10 before page-2.
	runner := &fakeRunner{pages: 12}
	r := newTestRasterizer(runner, 12, nil)

	pages, err := r.Rasterize(context.Background(), "in.pdf")
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if len(pages) != 12 {
		t.Fatalf("len(pages) = %d, want 12", len(pages))
	}
	for i, p := range pages {
		got := p.(*image.Gray).GrayAt(0, 0).Y
		if int(got) != i+1 {
			t.Fatalf("page %d carries marker %d, want %d", i, got, i+1)
		}
	}
}

func TestRasterizeZeroPageDocument(t *testing.T) {
	runner := &fakeRunner{}
	r := newTestRasterizer(runner, 0, nil)

	pages, err := r.Rasterize(context.Background(), "empty.pdf")
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("len(pages) = %d, want 0", len(pages))
	}
	if runner.calls != 0 {
		t.Fatalf("pdftoppm invoked %d times for zero-page document, want 0", runner.calls)
	}
}

func TestRasterizeUnparsablePDF(t *testing.T) {
	r := newTestRasterizer(&fakeRunner{}, 0, errors.New("not a pdf"))

	_, err := r.Rasterize(context.Background(), "garbage.bin")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Rasterize() error = %v, want ErrDecode", err)
	}
}

func TestRasterizeRenderFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	r := newTestRasterizer(runner, 3, nil)

	_, err := r.Rasterize(context.Background(), "in.pdf")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Rasterize() error = %v, want ErrDecode", err)
	}
}

func TestRasterizePageCountMismatch(t *testing.T) {
	runner := &fakeRunner{pages: 2}
	r := newTestRasterizer(runner, 5, nil)

	_, err := r.Rasterize(context.Background(), "in.pdf")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Rasterize() error = %v, want ErrDecode", err)
	}
}
