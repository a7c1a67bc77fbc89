package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers       []string
	ClientID      string
	MaxRetries    int
	RetryInterval time.Duration
}

// DefaultProducerConfig returns default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:       []string{"localhost:9092"},
		ClientID:      "hotel-booking",
		MaxRetries:    3,
		RetryInterval: time.Second,
	}
}

// Message is a Kafka message to produce
type Message struct {
	Topic string
	Key   []byte
	Value []byte
}

// Producer wraps a franz-go client for producing messages
type Producer struct {
	client *kgo.Client
	config *ProducerConfig
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg *ProducerConfig) (*Producer, error) {
	if cfg == nil {
		cfg = DefaultProducerConfig()
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.RetryTimeout(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	return &Producer{client: client, config: cfg}, nil
}

// Produce sends a message synchronously, retrying on failure
func (p *Producer) Produce(ctx context.Context, msg *Message) error {
	record := &kgo.Record{
		Topic: msg.Topic,
		Key:   msg.Key,
		Value: msg.Value,
	}

	var lastErr error
	for attempt := 0; attempt <= p.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.config.RetryInterval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if lastErr = p.client.ProduceSync(ctx, record).FirstErr(); lastErr == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to produce to %s after %d attempts: %w", msg.Topic, p.config.MaxRetries+1, lastErr)
}

// ProduceJSON marshals payload as JSON and produces it to topic
func (p *Producer) ProduceJSON(ctx context.Context, topic string, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return p.Produce(ctx, &Message{Topic: topic, Key: []byte(key), Value: value})
}

// Close flushes pending messages and closes the client
func (p *Producer) Close() {
	if p.client != nil {
		p.client.Close()
	}
}
