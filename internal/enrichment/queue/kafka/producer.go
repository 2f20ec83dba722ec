package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"smart-todo/internal/enrichment/queue"
	"smart-todo/pkg/log"
)

type enqueuer struct {
	producer sarama.SyncProducer
	topic    string
	l        log.Logger
}

// NewEnqueuer creates a Kafka-backed job Enqueuer publishing to topic.
func NewEnqueuer(producer sarama.SyncProducer, topic string, l log.Logger) queue.Enqueuer {
	if producer == nil {
		panic("enrichment/queue/kafka: producer is required")
	}
	return &enqueuer{producer: producer, topic: topic, l: l}
}

// Enqueue publishes the job keyed by entity so per-entity ordering holds.
func (e *enqueuer) Enqueue(ctx context.Context, job queue.Job) error {
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: e.topic,
		Key:   sarama.StringEncoder(job.Key()),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := e.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}

	e.l.Debugf(ctx, "enqueued %s job user=%s entity=%s partition=%d offset=%d",
		job.Kind, job.UserID, job.EntityID, partition, offset)
	return nil
}
