package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/gen/ent"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/ocr"
	"github.com/danielokoye/meddocs/internal/pdf"
	"github.com/danielokoye/meddocs/internal/pipeline"
	repo "github.com/danielokoye/meddocs/internal/repository"
	"github.com/danielokoye/meddocs/internal/storage"
)

// runocr runs the OCR stage synchronously for one document. Useful for
// reprocessing a document from the shell without going through the daemon.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <document-id-uuid>")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	if pool != nil {
		defer pool.Close()
	}

	store, err := storage.NewLocalStore(cfg.Uploads.Dir, logger)
	if err != nil {
		logger.Error("prepare uploads dir", "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	backend := ocr.NewTesseractBackend(cfg.OCR.TessdataDir, cfg.OCR.Language)
	engine := ocr.NewEngine(ocr.Config{RecognizeLimit: cfg.OCR.RecognizeLimit}, backend, logger)
	raster := pdf.NewRasterizer(pdf.Config{
		Pdftoppm: cfg.OCR.Pdftoppm,
		DPI:      cfg.OCR.RasterDPI,
	}, logger)
	p := pipeline.NewProcessor(docsRepo, store, engine, raster, logger)

	start := time.Now()
	if err := p.RunOCR(ctx, documentID); err != nil {
		logger.Error("ocr run failed",
			"document_id", documentID, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	doc, err := docsRepo.GetByID(ctx, documentID)
	if err != nil {
		logger.Error("reload document", "error", err)
		os.Exit(1)
	}
	logger.Info("ocr run OK",
		"document_id", documentID,
		"kind", doc.FileKind,
		"chars", doc.TranscriptLength(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
