package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-tracker/internal/core/cache"
	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/httpclient"
	"shipment-tracker/internal/core/i18n"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/core/server"
	"shipment-tracker/internal/core/telemetry"
	noticeadapter "shipment-tracker/internal/features/notices/adapters"
	noticehandler "shipment-tracker/internal/features/notices/handler"
	noticeports "shipment-tracker/internal/features/notices/ports"
	noticeservice "shipment-tracker/internal/features/notices/service"
	trackingadapter "shipment-tracker/internal/features/tracking/adapters"
	trackinghandler "shipment-tracker/internal/features/tracking/handler"
	trackingservice "shipment-tracker/internal/features/tracking/service"

	"go.uber.org/zap"

	_ "time/tzdata"
)

// @title Shipment Tracker API
// @version 1.0
// @description Server-rendered Bosta shipment tracking page and its JSON view.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("tracking_url", cfg.Tracking.BaseURL),
	)

	if cfg.TracingEnabled {
		shutdownTracer, err := telemetry.InitTracer(logger.ServiceName, l)
		if err != nil {
			l.Fatal("Failed to init tracer", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(ctx); err != nil {
				l.Warn("Tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	m := metrics.New("shipment_tracker")

	// Initialize Tracking Provider
	client := httpclient.New(httpclient.Options{
		Timeout: cfg.Tracking.FetchTimeout(),
		Proxy:   cfg.Proxy,
		Tracing: cfg.TracingEnabled,
	})
	bostaAdapter := trackingadapter.NewBostaAdapter(cfg.Tracking.BaseURL, client)

	location, err := cfg.Tracking.Location()
	if err != nil {
		l.Warn("Falling back to UTC for display times", zap.Error(err))
	}

	// Initialize Tracking Service
	trackingSvc := trackingservice.NewTrackingService(bostaAdapter, trackingservice.Options{
		Timeout:  cfg.Tracking.FetchTimeout(),
		Location: location,
		HelpURL:  cfg.Tracking.HelpURL,
	}, m)

	srv := server.New(cfg, m)

	// Initialize Notices when Redis is configured
	var notices noticeports.NoticeService
	var admin *server.Server
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to configure Redis", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			l.Warn("Redis not reachable, notices may be unavailable", zap.Error(err))
		}
		cancel()

		noticeSvc := noticeservice.NewNoticeService(noticeadapter.NewRedisNoticeRepository(redisCache))
		noticeHdl := noticehandler.NewNoticeHandler(noticeSvc)
		noticeHdl.Register(srv.App)
		notices = noticeSvc

		if cfg.AdminPort > 0 {
			admin = server.NewAdmin(cfg)
			noticeHdl.RegisterAdmin(admin.App)
		}
		l.Info("Notices enabled", zap.Bool("admin", admin != nil))
	} else if cfg.AdminPort > 0 {
		l.Warn("ADMIN_PORT set without REDIS_URL, operator server not started")
	}

	defaultLang, ok := i18n.Parse(cfg.Tracking.DefaultLanguage)
	if !ok {
		l.Warn("Unsupported DEFAULT_LANGUAGE, using Arabic", zap.String("value", cfg.Tracking.DefaultLanguage))
		defaultLang = i18n.DefaultLanguage
	}

	// Register Routes
	trackinghandler.NewTrackingHandler(trackingSvc, defaultLang, notices, m).Register(srv.App)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down")
		if admin != nil {
			if err := admin.Shutdown(); err != nil {
				l.Error("Admin server shutdown failed", zap.Error(err))
			}
		}
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if admin != nil {
		go func() {
			if err := admin.Run(); err != nil {
				l.Error("Admin server stopped", zap.Error(err))
			}
		}()
	}

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
