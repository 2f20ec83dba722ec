package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"smart-todo/config"
)

// newSaramaConfig builds the shared sarama configuration.
func newSaramaConfig() *sarama.Config {
	c := sarama.NewConfig()
	c.Version = sarama.V3_6_0_0
	c.Producer.Return.Successes = true
	c.Producer.RequiredAcks = sarama.WaitForAll
	c.Consumer.Offsets.Initial = sarama.OffsetOldest
	return c
}

// ConnectProducer creates a synchronous Kafka producer.
func ConnectProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to create producer: %w", err)
	}
	return producer, nil
}

// ConnectConsumerGroup creates a consumer group for the enrichment job topic.
func ConnectConsumerGroup(cfg config.KafkaConfig) (sarama.ConsumerGroup, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if cfg.ConsumerGroup == "" {
		return nil, fmt.Errorf("kafka: consumer group is required")
	}

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, newSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to create consumer group: %w", err)
	}
	return group, nil
}
