package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"adpulse/internal/core/domain"
)

// Publisher implements port.RefreshPublisher.
type Publisher struct {
	broker *Broker
}

func NewPublisher(b *Broker) *Publisher {
	return &Publisher{broker: b}
}

// PublishRefresh queues job as a persistent JSON message.
func (p *Publisher) PublishRefresh(ctx context.Context, job domain.RefreshJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := encodeJob(job)
	if err != nil {
		return err
	}
	if err := p.broker.publish(msg); err != nil {
		return fmt.Errorf("publish refresh job %s: %w", job.JobID, err)
	}
	return nil
}

func encodeJob(job domain.RefreshJob) (amqp.Publishing, error) {
	body, err := json.Marshal(job)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode refresh job: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    job.JobID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}
