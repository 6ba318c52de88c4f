package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"tms/internal/pkg/config"
	"tms/pkg/logger"
	"tms/pkg/retrier"
	"tms/pkg/retrier/backoff_adapter"
)

// Producer публикует события синхронно: Publish возвращается после подтверждения брокером.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	retrier  retrier.Retrier
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := Brokers(cfg.Brokers)
	producerLog := log.With(logger.NewField("brokers", brokers))

	if err := ping(ctx, producerLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return NewProducerWithClient(producerLog, producer), nil
}

func NewProducerWithClient(log logger.Logger, producer sarama.SyncProducer) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		retrier:  backoff_adapter.New(retrier.Quick()),
	}
}

func (p *Producer) Publish(ctx context.Context, topic string, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	err := p.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		PublishedTotal.WithLabelValues(topic, "error").Inc()
		p.log.With(
			logger.NewField("topic", topic),
			logger.NewField("key", key),
			logger.NewField("error", err),
		).Error("kafka publish failed")
		return fmt.Errorf("send message to %s: %w", topic, err)
	}

	PublishedTotal.WithLabelValues(topic, "success").Inc()
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
