// Package rabbitmq queues background creative refresh jobs on RabbitMQ.
package rabbitmq

import (
	"fmt"
	"sync"

	"github.com/streadway/amqp"

	"adpulse/internal/config/configs"
)

// Broker owns one connection and channel bound to the refresh queue.
type Broker struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	prefetch int

	mu sync.Mutex
}

// Dial connects to cfg.URL and declares the durable refresh queue.
func Dial(cfg configs.AMQP) (*Broker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	q, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Queue, err)
	}
	return &Broker{conn: conn, ch: ch, queue: q.Name, prefetch: cfg.Prefetch}, nil
}

// publish sends msg to the refresh queue. Channels are not safe for
// concurrent publishing.
func (b *Broker) publish(msg amqp.Publishing) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch.Publish("", b.queue, false, false, msg)
}

// Close closes the channel and the connection.
func (b *Broker) Close() error {
	chErr := b.ch.Close()
	if err := b.conn.Close(); err != nil {
		return err
	}
	return chErr
}
