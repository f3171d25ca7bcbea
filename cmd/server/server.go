package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"go.uber.org/zap"

	"ContactBook/config"
	"ContactBook/internal/handler"
	"ContactBook/internal/middleware"
	"ContactBook/internal/router"
	"ContactBook/internal/service"
	"ContactBook/internal/store"
	"ContactBook/pkg/logger"
	"ContactBook/pkg/otel"
	"ContactBook/pkg/snowflake"
	"ContactBook/storage/database"
)

func main() {
	// 日志部分
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	// 数据库句柄显式构造、显式传递，退出时保证释放
	db, err := database.Open()
	if err != nil {
		logger.Logger.Fatal("Failed to open database", zap.Error(err))
	}

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer closeCancel()

		if err := database.Close(closeCtx, db); err != nil {
			logger.Logger.Error("Failed to close database connection", zap.Error(err))
		} else {
			logger.Logger.Info("Database connection closed successfully")
		}
	}()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// 链路追踪按需开启
	if config.Cfg.TracingEnabled {
		shutdown, err := otel.InitOpenTelemetry(ctx, otel.Config{
			ServiceName:    config.Cfg.ServiceName,
			ServiceVersion: "1.0.0",
			Environment:    config.Cfg.Environment,
			OTLPEndpoint:   config.Cfg.TracingEndpoint,
			SampleRatio:    config.Cfg.TracingSampler,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry", zap.Error(err))
			logger.Logger.Info("Tracing will be disabled")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()
		}
	}

	contactStore := store.NewContactStore(db)
	contactService := service.NewContactService(contactStore)
	contacts := handler.NewContactHandler(contactService)

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)

	h := newServer([]hertzconfig.Option{server.WithHostPorts(addr)})

	router.Register(h, contacts)

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}

func newServer(opts []hertzconfig.Option) *server.Hertz {
	if config.Cfg.TracingEnabled {
		tracerOpt, tracingMiddleware := middleware.NewServerTracerConfig()
		opts = append(opts, tracerOpt)
		h := server.Default(opts...)
		h.Use(tracingMiddleware)
		return h
	}
	return server.Default(opts...)
}
