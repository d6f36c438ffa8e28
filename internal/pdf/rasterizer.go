package pdf

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrDecode wraps every failure to parse or render a PDF.
var ErrDecode = errors.New("pdf decode failed")

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // rasterization DPI, default 300
}

// Rasterizer converts a PDF into an ordered sequence of page images.
// pdfcpu validates the file and reports the page count; the actual raster
// rendering shells out to pdftoppm, which pdfcpu cannot do.
type Rasterizer struct {
	cfg       Config
	runner    Runner
	pageCount func(path string) (int, error)
	logger    *slog.Logger
}

func NewRasterizer(cfg Config, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Rasterizer{
		cfg:       cfg,
		runner:    execRunner{},
		pageCount: api.PageCountFile,
		logger:    logger,
	}
}

// Rasterize renders every page of the PDF at path, in physical page order.
// A zero-page document yields an empty slice, not an error.
func (r *Rasterizer) Rasterize(ctx context.Context, path string) ([]image.Image, error) {
	n, err := r.pageCount(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if n == 0 {
		r.logger.Warn("pdf has no pages", "path", path)
		return nil, nil
	}

	tmpDir, err := os.MkdirTemp("", "meddocs-raster-*")
	if err != nil {
		return nil, fmt.Errorf("%w: temp dir: %v", ErrDecode, err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			r.logger.Warn("failed to remove raster temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", strconv.Itoa(r.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: pdftoppm: %v: %s", ErrDecode, err, truncate(string(errb), 1<<10))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sortByPageNumber(matches)
	if len(matches) != n {
		return nil, fmt.Errorf("%w: rendered %d of %d pages", ErrDecode, len(matches), n)
	}

	pages := make([]image.Image, 0, n)
	for _, m := range matches {
		img, err := decodePNG(m)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrDecode, len(pages)+1, err)
		}
		pages = append(pages, img)
	}
	r.logger.Debug("pdf rasterized", "path", path, "pages", n, "dpi", r.cfg.DPI)
	return pages, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// sortByPageNumber orders pdftoppm output (prefix-1.png, prefix-2.png, ...)
// numerically. pdftoppm zero-pads page indices based on the total count, but
// a lexical sort would still misorder mixed-width names.
func sortByPageNumber(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return pageNumber(paths[i]) < pageNumber(paths[j])
	})
}

func pageNumber(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), ".png")
	idx := strings.LastIndex(base, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
