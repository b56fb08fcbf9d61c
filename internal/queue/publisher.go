package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"earthly-globe/internal/config"
)

// Publisher sends dataset events.  Failures are returned so callers can log
// and move on; the request path never depends on the broker.
type Publisher interface {
	PublishDatasetBuilt(ctx context.Context, ev DatasetBuiltEvent) error
}

// NewPublisher returns an AMQP publisher when events are enabled, and a
// no-op publisher otherwise.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) Publisher {
	if !cfg.Enabled {
		return NopPublisher{}
	}
	return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue, logger: logger}
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishDatasetBuilt(context.Context, DatasetBuiltEvent) error { return nil }

// AMQPPublisher publishes to a durable queue on the default exchange.  It
// dials per message; build events are infrequent.
type AMQPPublisher struct {
	url    string
	queue  string
	logger *slog.Logger
}

// PublishDatasetBuilt sends ev as a persistent JSON message.
func (p *AMQPPublisher) PublishDatasetBuilt(ctx context.Context, ev DatasetBuiltEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// idempotent; durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}
	p.logger.Debug("dataset event published", "queue", p.queue, "countries", ev.Countries)
	return nil
}
