package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryInterceptor wraps each call in a span and logs its outcome.
func UnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	tracer := otel.Tracer("flashdeal/grpc")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, span := tracer.Start(ctx, info.FullMethod)
		defer span.End()

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		span.SetAttributes(attribute.String("rpc.grpc.status_code", code.String()))
		if err != nil {
			span.SetStatus(otelcodes.Error, err.Error())
		}
		logger.Info("grpc request",
			"method", info.FullMethod,
			"code", code.String(),
			"duration", time.Since(start).String(),
		)
		return resp, err
	}
}
