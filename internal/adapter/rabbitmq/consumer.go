package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"adpulse/internal/core/domain"
)

// retryHeader counts how often a job has been re-queued after a failure.
const retryHeader = "x-retry-count"

// DefaultMaxRetries is how often a failed job is re-queued before it is
// dropped.
const DefaultMaxRetries = 3

// JobHandler runs one refresh job. A returned error re-queues the job.
type JobHandler func(ctx context.Context, job domain.RefreshJob) error

// Consumer reads refresh jobs and hands them to a JobHandler.
type Consumer struct {
	broker     *Broker
	handle     JobHandler
	maxRetries int
	logger     *slog.Logger
	republish  func(amqp.Publishing) error
}

// NewConsumer returns a consumer on b's queue.
func NewConsumer(b *Broker, handle JobHandler, logger *slog.Logger) *Consumer {
	return &Consumer{
		broker:     b,
		handle:     handle,
		maxRetries: DefaultMaxRetries,
		logger:     logger,
		republish:  b.publish,
	}
}

// Run consumes until ctx is cancelled or the delivery channel closes.
// Deliveries are acknowledged manually once handled.
func (c *Consumer) Run(ctx context.Context) error {
	if c.broker.prefetch > 0 {
		if err := c.broker.ch.Qos(c.broker.prefetch, 0, false); err != nil {
			return fmt.Errorf("set prefetch: %w", err)
		}
	}
	msgs, err := c.broker.ch.Consume(
		c.broker.queue,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.process(ctx, d)
		}
	}
}

func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	var job domain.RefreshJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		c.logger.Warn("invalid refresh job", slog.String("message_id", d.MessageId), slog.Any("error", err))
		_ = d.Reject(false)
		return
	}
	log := c.logger.With(slog.String("job_id", job.JobID.String()), slog.String("workspace_id", job.WorkspaceID.String()))

	err := c.handle(ctx, job)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	retries := retryCount(d.Headers)
	if retries >= c.maxRetries {
		log.Error("refresh job dropped", slog.Int("retries", retries), slog.Any("error", err))
		_ = d.Ack(false)
		return
	}

	log.Warn("refresh job failed, re-queueing", slog.Int("retries", retries), slog.Any("error", err))
	msg := amqp.Publishing{
		Headers:      amqp.Table{retryHeader: int32(retries + 1)},
		ContentType:  d.ContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    d.MessageId,
		Timestamp:    d.Timestamp,
		Body:         d.Body,
	}
	if err := c.republish(msg); err != nil {
		log.Error("re-queue refresh job", slog.Any("error", err))
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

// retryCount reads the retry header. Decoded tables carry integers as int32
// or int64 depending on the publisher.
func retryCount(h amqp.Table) int {
	switch v := h[retryHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case int16:
		return int(v)
	case int8:
		return int(v)
	}
	return 0
}
