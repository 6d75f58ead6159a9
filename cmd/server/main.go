package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpapi "stratego/internal/api/http"
	"stratego/internal/api/origin"
	"stratego/internal/api/ws"
	"stratego/internal/config"
	"stratego/internal/room"
	"stratego/internal/store"
)

var version = "dev" // set via ldflags during build

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg.LobbyIDLength, logger.Named("lobby"))
	hub := ws.NewHub(rm, origin.NewPolicy(cfg.AllowedOrigins), cfg.SendBuffer, logger.Named("ws"))
	rm.SetBroadcaster(hub)

	r := httpapi.SetupRouter(rm, hub, cfg, logger.Named("http"))
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	hub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown incomplete", zap.Error(err))
	}
	logger.Info("server stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
