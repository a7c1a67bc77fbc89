package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/pkg/kafka"
	"github.com/hvhai/hotel-booking-speckit/pkg/logger"
)

// RefundDispatcher hands a refund off to the payment processor. Dispatch
// errors are reported to the caller but must never roll back the
// cancellation that produced them.
type RefundDispatcher interface {
	Dispatch(ctx context.Context, booking *domain.Booking, amount decimal.Decimal) error
}

// RefundEvent is the payload published for each dispatched refund
type RefundEvent struct {
	BookingID    string    `json:"booking_id"`
	UserID       string    `json:"user_id"`
	RefundAmount string    `json:"refund_amount"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

// KafkaRefundDispatcher publishes refund events to a Kafka topic
type KafkaRefundDispatcher struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaRefundDispatcher creates a Kafka-backed refund dispatcher
func NewKafkaRefundDispatcher(producer *kafka.Producer, topic string) *KafkaRefundDispatcher {
	return &KafkaRefundDispatcher{producer: producer, topic: topic}
}

// Dispatch publishes the refund event keyed by booking ID
func (d *KafkaRefundDispatcher) Dispatch(ctx context.Context, booking *domain.Booking, amount decimal.Decimal) error {
	event := RefundEvent{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		RefundAmount: amount.StringFixed(2),
		DispatchedAt: time.Now().UTC(),
	}
	return d.producer.ProduceJSON(ctx, d.topic, booking.ID, event)
}

// LogRefundDispatcher simulates the payment processor by logging the refund.
// Used when no Kafka brokers are configured.
type LogRefundDispatcher struct{}

// NewLogRefundDispatcher creates a log-only refund dispatcher
func NewLogRefundDispatcher() *LogRefundDispatcher {
	return &LogRefundDispatcher{}
}

// Dispatch logs the refund and always succeeds
func (d *LogRefundDispatcher) Dispatch(_ context.Context, booking *domain.Booking, amount decimal.Decimal) error {
	logger.Get().Info("refund dispatched",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", booking.UserID),
		zap.String("refund_amount", amount.StringFixed(2)),
	)
	return nil
}

// NoOpRefundDispatcher discards refunds, for tests
type NoOpRefundDispatcher struct{}

// Dispatch does nothing
func (d *NoOpRefundDispatcher) Dispatch(context.Context, *domain.Booking, decimal.Decimal) error {
	return nil
}
