package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"retail/internal/auth"
	"retail/internal/config"
	"retail/internal/infrastructure/logger"
	"retail/internal/infrastructure/metrics"
	"retail/internal/infrastructure/mongodb"
	"retail/internal/order"
	"retail/internal/product"
	"retail/internal/server"
	"retail/internal/validation"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Admin.Key == config.DefaultAdminKey {
		zapLogger.Warn("ADMIN_KEY not set, using the default admin key")
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	client, err := mongodb.NewConnection(connectCtx, cfg.Database)
	cancelConnect()
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	db := client.Database(cfg.Database.Name)
	zapLogger.Info("database connected", zap.String("database", cfg.Database.Name))

	gate := auth.NewAdminGate(cfg.Admin.Key)
	validator := validation.New()

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancelSetup()

	productCtrl, err := product.NewModule(setupCtx, db, gate, validator, zapLogger)
	if err != nil {
		zapLogger.Fatal("initialising product module", zap.Error(err))
	}
	orderCtrl, err := order.NewModule(setupCtx, db, gate, validator, zapLogger)
	if err != nil {
		zapLogger.Fatal("initialising order module", zap.Error(err))
	}

	health := server.NewHealthHandler(mongodb.NewDatabase(db), cfg.Database.URLConfigured, zapLogger)
	router := server.NewRouter(productCtrl, orderCtrl, health, metrics.NewHTTPMetrics(), zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		zapLogger.Error("disconnecting from database", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
