package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"backoffice/internal/commons"
	"backoffice/internal/config"
	"backoffice/internal/customer"
	"backoffice/internal/infrastructure/logger"
	"backoffice/internal/infrastructure/mysql"
	"backoffice/internal/order"
	"backoffice/internal/product"
	"backoffice/internal/report"
	"backoffice/internal/seed"
	"backoffice/internal/server"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		// No config file: fall back to environment variables.
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.EnsureSchema(context.Background(), db); err != nil {
		zapLogger.Fatal("bootstrapping schema", zap.Error(err))
	}

	productCtrl := product.NewModule(db, zapLogger)
	customerCtrl := customer.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, cfg, zapLogger)
	reportCtrl := report.NewModule(db, zapLogger)
	seeder := seed.NewHandler(db, zapLogger)

	router := server.NewRouter(productCtrl, customerCtrl, orderCtrl, reportCtrl, seeder, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
