package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"munshiji/config"
	"munshiji/database"
	"munshiji/handlers"
	"munshiji/logger"
	"munshiji/routes"
	"munshiji/utils"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		ServiceName: cfg.ServiceName,
		File:        cfg.LogFile,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Unable to initialise logger: %v", err)
	}
	defer logger.Sync()

	store := database.NewSeeded()
	h := handlers.New(store, handlers.Options{
		Tokens:   tokenIssuer(cfg),
		Location: cfg.Location,
	})
	app := routes.NewApp(cfg, h)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		zlog.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("Shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("मुंशी जी API चालू हो गया है! | Munshi Ji Running!",
		zap.String("addr", cfg.Addr()),
		zap.String("token_mode", cfg.TokenMode),
		zap.String("timezone", cfg.Location.String()),
	)
	if err := app.Listen(cfg.Addr()); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}

func tokenIssuer(cfg *config.Config) utils.TokenIssuer {
	if cfg.TokenMode == config.TokenModeJWT {
		return utils.JWTTokenIssuer{
			Secret: []byte(cfg.JWTSecret),
			TTL:    time.Duration(cfg.JWTExpirationHours) * time.Hour,
		}
	}
	return utils.DemoTokenIssuer{}
}
