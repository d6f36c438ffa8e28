package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/danielokoye/meddocs/internal/common"
)

// RequestIDInterceptor tags every RPC with a request ID and logs its outcome.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)
		start := time.Now()

		resp, err := handler(ctx, req)

		if err != nil {
			logger.Warn("rpc failed",
				"req_id", rid,
				"method", info.FullMethod,
				"code", status.Code(err).String(),
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		} else {
			logger.Info("rpc ok",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
		return resp, err
	}
}
