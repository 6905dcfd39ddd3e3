package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/LavaJover/shvark-flashdeal-service/internal/app/background"
	"github.com/LavaJover/shvark-flashdeal-service/internal/app/setup"
	"github.com/LavaJover/shvark-flashdeal-service/internal/config"
	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/tracing"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	logg, logCloser, err := logger.Setup(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logCloser.Close()

	shutdownTracing, err := tracing.Init(cfg.Tracing)
	if err != nil {
		log.Fatalf("failed to init tracing: %v", err)
	}

	deps, err := setup.InitializeDependencies(cfg, logg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	ucs, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Creating gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcapi.UnaryInterceptor(logg)))
	grpcapi.RegisterFlashDealServiceServer(grpcServer, grpcapi.NewDealHandler(ucs.DealUsecase))

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      handlers.NewRouter(ucs.DealUsecase, deps.Registry, logg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	tasks := background.NewBackgroundTasks(ucs.DealUsecase, cfg.Sweep.Interval, logg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("gRPC server started", "addr", lis.Addr().String())
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		logg.Info("HTTP server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return tasks.StartAll(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcServer.GracefulStop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logg.Error("HTTP server shutdown", "error", err.Error())
		}
		deps.Close(shutdownCtx)
		if err := shutdownTracing(shutdownCtx); err != nil {
			logg.Error("tracing shutdown", "error", err.Error())
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logg.Error("server stopped with error", "error", err.Error())
		os.Exit(1)
	}
	logg.Info("server stopped")
}
