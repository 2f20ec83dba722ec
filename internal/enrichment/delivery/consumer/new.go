package consumer

import (
	"context"

	"github.com/IBM/sarama"

	"smart-todo/config"
	"smart-todo/internal/enrichment"
	"smart-todo/pkg/log"
)

// Consumer drains the enrichment job topic and dispatches each job to
// the matching workflow entry point.
type Consumer struct {
	l     log.Logger
	cfg   config.KafkaConfig
	group sarama.ConsumerGroup
	uc    enrichment.UseCase
}

// New creates a Consumer over an already-connected consumer group.
func New(l log.Logger, cfg config.KafkaConfig, group sarama.ConsumerGroup, uc enrichment.UseCase) *Consumer {
	return &Consumer{
		l:     l,
		cfg:   cfg,
		group: group,
		uc:    uc,
	}
}

// Run consumes until the context is cancelled. Rebalances restart the
// inner consume loop; only a hard consumer error or cancellation ends it.
func (c *Consumer) Run(ctx context.Context) error {
	topics := []string{c.cfg.JobTopic}
	handler := &groupHandler{l: c.l, uc: c.uc}

	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
