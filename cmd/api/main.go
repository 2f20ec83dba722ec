package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-todo/config"
	"smart-todo/config/kafka"
	"smart-todo/config/postgre"
	_ "smart-todo/docs" // Swagger docs
	queueKafka "smart-todo/internal/enrichment/queue/kafka"
	"smart-todo/internal/enrichment/reasoner"
	"smart-todo/internal/httpserver"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

// @title       Smart Todo API
// @description AI-assisted todo service: task enrichment, context analysis, recommendations and schedule suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Smart Todo API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	// 4. Kafka producer for enrichment jobs
	producer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect Kafka producer: ", err)
		return
	}
	defer producer.Close()

	enqueuer := queueKafka.NewEnqueuer(producer, cfg.Kafka.JobTopic, logger)

	// 5. Reasoning client
	openaiClient, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}
	reasonerClient := reasoner.New(logger, openaiClient)

	// 6. Google Calendar (optional)
	var calendar gcalendar.IGCalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendar = calendarClient
		}
	}

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		PostgresDB:  postgresDB,
		Enqueuer:    enqueuer,
		Reasoner:    reasonerClient,
		Calendar:    calendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
