package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"textila-api/internal/client"
	"textila-api/internal/config"
	"textila-api/internal/repository"
	"textila-api/internal/server"
	"textila-api/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	db, err := client.InitMysqlClient(cfg.DatabaseURL)
	if err != nil {
		slog.Error("init database", "err", err)
		os.Exit(1)
	}
	stripeClient := client.NewStripeClient(&cfg.Stripe)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)
	paymentService := service.NewPaymentService(stripeClient, cfg.BaseURL, orderRepo)
	trackingService := service.NewTrackingService(trackingRepo)

	srv := server.NewServer(
		userService,
		productService,
		orderService,
		paymentService,
		trackingService,
		cfg.Auth.JWTSecret,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	slog.Info("starting HTTP server", "addr", serverAddr, "env", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	slog.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		slog.Error("HTTP server shutdown error", "err", err)
		os.Exit(1)
	}
}

func setupLogger(logCfg config.Log) {
	var level slog.Level
	switch strings.ToLower(logCfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.ToLower(logCfg.Format) == "text" {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
