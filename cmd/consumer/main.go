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
	contextRepoPg "smart-todo/internal/contextentry/repository/postgre"
	"smart-todo/internal/enrichment/delivery/consumer"
	"smart-todo/internal/enrichment/reasoner"
	enrichmentUC "smart-todo/internal/enrichment/usecase"
	recRepoPg "smart-todo/internal/recommendation/repository/postgre"
	schedRepoPg "smart-todo/internal/schedule/repository/postgre"
	taskRepoPg "smart-todo/internal/task/repository/postgre"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

// main is the entry point for the background enrichment consumer. It
// drains the job topic and runs the enrichment workflows against the
// same database the API writes to.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting enrichment consumer...")

	// Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	group, err := kafka.ConnectConsumerGroup(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect Kafka consumer group: ", err)
		return
	}
	defer group.Close()

	// Reasoning client
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

	// Google Calendar (optional)
	var calendar gcalendar.IGCalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
		}
	}

	// Repositories + enrichment use case
	taskRepo := taskRepoPg.New(postgresDB, logger)
	contextRepo := contextRepoPg.New(postgresDB, logger)
	recRepo := recRepoPg.New(postgresDB, logger)
	schedRepo := schedRepoPg.New(postgresDB, logger)

	enrichUseCase := enrichmentUC.New(
		logger,
		enrichmentUC.Config{
			WorkHours:  cfg.Enrichment.WorkHours,
			CalendarID: cfg.GoogleCalendar.CalendarID,
		},
		reasonerClient,
		taskRepo,
		contextRepo,
		recRepo,
		schedRepo,
		calendar,
	)

	// Consume until shutdown
	c := consumer.New(logger, cfg.Kafka, group, enrichUseCase)
	if err := c.Run(ctx); err != nil {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer stopped gracefully")
}
