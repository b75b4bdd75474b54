// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the portfolio server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/mailer"
	"folio/internal/render"
	"folio/internal/router"
	"folio/internal/session"
	"folio/internal/storage"
	"folio/internal/store"
)

func main() {
	// Structured logger. Text output works for both dev and container logs.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL and bring the schema up to date.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default operator account (no-op if users exist).
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (sessions + full-page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, session and CSRF cookies are
	// marked Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Template renderers. In dev mode the layouts pull assets from CDN;
	// in production they use files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize admin renderer", "error", err)
		os.Exit(1)
	}
	publicRenderer, err := render.NewPublic(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize public renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	userStore := store.NewUserStore(db)
	projectStore := store.NewProjectStore(db)
	skillStore := store.NewSkillStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	timelineStore := store.NewTimelineStore(db)
	settingStore := store.NewSiteSettingStore(db)
	contactStore := store.NewContactStore(db)

	// S3-compatible object storage (optional, uploads disabled without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Contact-form notifications go out over SMTP when configured.
	var notifier mailer.Notifier
	if cfg.MailConfigured() {
		notifier = mailer.NewSMTP(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
			cfg.SMTPFrom, cfg.ContactEmail,
		)
		slog.Info("smtp notifier configured", "host", cfg.SMTPHost, "to", cfg.ContactEmail)
	} else {
		slog.Warn("smtp not configured, contact notifications disabled")
	}

	// Full-page HTML cache for the public site.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Handler groups.
	adminHandlers := handlers.NewAdmin(renderer, projectStore, skillStore,
		testimonialStore, timelineStore, settingStore, contactStore,
		storageClient, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	publicHandlers := handlers.NewPublic(publicRenderer, settingStore,
		projectStore, skillStore, testimonialStore, timelineStore, pageCache)
	contactHandlers := handlers.NewContact(contactStore, notifier)
	apiHandlers := handlers.NewAPI(projectStore)
	sitemapHandlers := handlers.NewSitemap(projectStore)

	r := router.New(sessionStore, secureCookies, adminHandlers, authHandlers,
		publicHandlers, contactHandlers, apiHandlers, sitemapHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
