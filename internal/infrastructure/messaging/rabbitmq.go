package messaging

import (
	"context"
	"fmt"
	"sync"

	"doctor-slot-sync/config"
	"doctor-slot-sync/internal/domain/entity"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// RabbitMQPublisher publishes sync failures to a durable queue
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
}

func NewRabbitMQPublisher(cfg config.RabbitMQConfig) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if _, err := channel.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.Queue, err)
	}

	logrus.Infof("Successfully connected to RabbitMQ queue %s", cfg.Queue)

	return &RabbitMQPublisher{
		conn:    conn,
		channel: channel,
		queue:   cfg.Queue,
	}, nil
}

// PublishFailure sends the failure as a persistent JSON message
func (p *RabbitMQPublisher) PublishFailure(ctx context.Context, failure *entity.SyncFailure) error {
	body, err := json.Marshal(failure)
	if err != nil {
		return fmt.Errorf("failed to encode sync failure: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    failure.CreatedAt,
		Type:         "doctor.slots.fetch_failed",
		Body:         body,
	})
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
