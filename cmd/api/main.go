package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code-refactor-insight/config"
	_ "code-refactor-insight/docs" // Swagger docs
	"code-refactor-insight/internal/httpserver"
	"code-refactor-insight/internal/insight/usecase"
	"code-refactor-insight/internal/integration"
	"code-refactor-insight/internal/middleware"
	"code-refactor-insight/pkg/github"
	"code-refactor-insight/pkg/log"
	"code-refactor-insight/pkg/sonar"
	"code-refactor-insight/pkg/webhook"
	"code-refactor-insight/pkg/worker"
)

// @title       Code Refactor Insight API
// @description Periodic commit and code-quality reports combining GitHub and SonarCloud.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Code Refactor Insight...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default repository: %s/%s", cfg.GitHub.Owner, cfg.GitHub.Repo)

	// 3. Upstream clients
	githubClient, err := github.NewTokenClient(cfg.GitHub.Token, cfg.HTTP.Timeout)
	if err != nil {
		logger.Error(ctx, "Failed to initialize GitHub client: ", err)
		os.Exit(1)
	}
	if cfg.GitHub.BaseURL != "" {
		if githubClient, err = githubClient.WithBaseURL(cfg.GitHub.BaseURL); err != nil {
			logger.Error(ctx, "Invalid GitHub base URL: ", err)
			os.Exit(1)
		}
	}

	var sonarClient sonar.ISonar
	if cfg.Sonar.SonarEnabled() {
		c, sErr := sonar.New(cfg.Sonar.Token, cfg.HTTP.Timeout)
		if sErr != nil {
			logger.Error(ctx, "Failed to initialize SonarCloud client: ", sErr)
			os.Exit(1)
		}
		sonarClient = c.WithBaseURL(cfg.Sonar.BaseURL)
		logger.Infof(ctx, "SonarCloud analysis enabled for %s", cfg.Sonar.ProjectKey)
	} else {
		logger.Warn(ctx, "SonarCloud skipped: SONAR_TOKEN or SONAR_PROJECT_KEY is missing")
	}

	// 4. Delivery and background processing
	sender := webhook.NewSender(webhook.Config{
		Timeout:    cfg.HTTP.Timeout,
		RetryDelay: cfg.Webhook.RetryDelay,
		Retries:    1,
	}, logger)

	pool := worker.New(worker.Config{
		Workers:   cfg.Worker.Count,
		QueueSize: cfg.Worker.QueueSize,
	}, logger)
	pool.Start()

	// 5. Insight UseCase
	insightUC := usecase.New(logger, githubClient, sonarClient, sender, pool, usecase.Options{
		DefaultRepo: cfg.GitHub.Owner + "/" + cfg.GitHub.Repo,
		CommitCount: cfg.GitHub.CommitCount,
		ProjectKey:  cfg.Sonar.ProjectKey,
		MetricKeys:  cfg.Sonar.MetricKeys,
		EventName:   cfg.Webhook.EventName,
		Username:    cfg.Webhook.Username,
		LogURL:      cfg.Telex.LogURL,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		InsightUC:      insightUC,
		Pool:           pool,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.Tick.RateLimitPerMin,
			AllowedIPs:      cfg.Tick.AllowedIPs,
		},
		Integration: integration.Config{
			BaseURL:      cfg.App.BaseURL,
			DefaultOwner: cfg.GitHub.Owner,
			DefaultRepo:  cfg.GitHub.Repo,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
