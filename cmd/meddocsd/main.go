package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/danielokoye/meddocs/gen/proto/meddocs/v1"
	"github.com/danielokoye/meddocs/internal/async"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/export"
	"github.com/danielokoye/meddocs/internal/ingest"
	"github.com/danielokoye/meddocs/internal/ocr"
	"github.com/danielokoye/meddocs/internal/pdf"
	"github.com/danielokoye/meddocs/internal/pipeline"
	repo "github.com/danielokoye/meddocs/internal/repository"
	svc "github.com/danielokoye/meddocs/internal/server"
	"github.com/danielokoye/meddocs/internal/storage"
	"github.com/danielokoye/meddocs/internal/summarize"
	"github.com/danielokoye/meddocs/internal/summarize/openai"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewLocalStore(cfg.Uploads.Dir, logger)
	if err != nil {
		logger.Error("failed to prepare uploads dir", "error", err)
		os.Exit(1)
	}

	usersRepo := repo.NewUserRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)

	// OCR stage: tesseract behind the preprocessing engine, pdftoppm raster.
	backend := ocr.NewTesseractBackend(cfg.OCR.TessdataDir, cfg.OCR.Language)
	engine := ocr.NewEngine(ocr.Config{RecognizeLimit: cfg.OCR.RecognizeLimit}, backend, logger)
	raster := pdf.NewRasterizer(pdf.Config{
		Pdftoppm: cfg.OCR.Pdftoppm,
		DPI:      cfg.OCR.RasterDPI,
	}, logger)
	processor := pipeline.NewProcessor(docsRepo, store, engine, raster, logger)

	// Summary stage.
	completer := openai.NewClient(cfg.Summarizer, logger)
	summarizer := summarize.NewService(docsRepo, completer, logger)

	queue := async.NewProcessorQueue(processor, summarizer, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestSvc := ingest.NewService(usersRepo, docsRepo, store, queue, logger)
	exportSvc := export.NewService(docsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	v1.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsService(ingestSvc, docsRepo, logger))
	v1.RegisterUsersServiceServer(grpcServer, svc.NewUsersService(usersRepo, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exportSvc, logger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("meddocsd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
