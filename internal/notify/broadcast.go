package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BroadcastChannel publishes realtime inbox updates to a RabbitMQ topic
// exchange; the routing key is "<event>.<user_id>" so frontend bridges
// can bind per user or per event type.
type BroadcastChannel struct {
	Publisher BroadcastPublisher
}

// BroadcastPublisher is the broker handoff; implemented by RabbitPublisher
// and faked in tests.
type BroadcastPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

func (c BroadcastChannel) Name() string { return ChannelBroadcast }

func (c BroadcastChannel) Send(ev Event, rec Recipient, content Content) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := fmt.Sprintf("%s.%d", ev.Type, rec.UserID)
	return c.Publisher.PublishJSON(ctx, key, broadcastPayload{
		Type:    string(ev.Type),
		UserID:  rec.UserID,
		Content: content,
	})
}

type broadcastPayload struct {
	Type    string  `json:"type"`
	UserID  int64   `json:"user_id"`
	Content Content `json:"content"`
}

// RabbitPublisher wraps an amqp channel bound to one topic exchange.
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *RabbitPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        b,
	})
}

func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
