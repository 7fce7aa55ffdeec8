package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublish = errors.New("queue: publish failed")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события в RabbitMQ
// Соединение открывается на каждую публикацию: события редкие, держать канал незачем
type Publisher struct {
	url    string
	queue  string
	logger Logger
}

// NewPublisher создает publisher для очереди queue
func NewPublisher(url, queue string, logger Logger) *Publisher {
	if queue == "" {
		queue = RecordCreatedQueue
	}
	return &Publisher{url: url, queue: queue, logger: logger}
}

// PublishRecordCreated отправляет событие о создании записи
func (p *Publisher) PublishRecordCreated(ctx context.Context, event RecordCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: PublishRecordCreated - marshal: %v", ErrPublish, err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: PublishRecordCreated - dial: %v", ErrPublish, err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: PublishRecordCreated - channel: %v", ErrPublish, err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(p.queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: PublishRecordCreated - declare queue %s: %v", ErrPublish, p.queue, err)
	}

	err = ch.PublishWithContext(ctx, "", q.Name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: PublishRecordCreated - publish: %v", ErrPublish, err)
	}

	p.logger.Info("Queue: published %s record_id=%d", p.queue, event.RecordID)
	return nil
}

// NoopPublisher используется, когда RabbitMQ отключен в конфиге
type NoopPublisher struct{}

func (NoopPublisher) PublishRecordCreated(ctx context.Context, event RecordCreatedEvent) error {
	return nil
}
