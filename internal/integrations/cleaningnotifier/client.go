// Package cleaningnotifier публикует изменения графика уборок в Kafka
package cleaningnotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// Client публикует события об изменении дат уборки
// Клиент без writer (уведомления выключены) ничего не отправляет
type Client struct {
	writer MessageWriter
	topic  string
	log    Logger
	now    func() time.Time
}

// NewClient создает клиента, пишущего в topic на brokers
// Ключ сообщения - ID бронирования, поэтому изменения одного бронирования попадают в одну партицию
func NewClient(brokers []string, topic string, log Logger) *Client {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Balancer: &kafka.Hash{},
	})
	return NewClientWithWriter(writer, topic, log)
}

// NewClientWithWriter создает клиента поверх произвольного writer
func NewClientWithWriter(writer MessageWriter, topic string, log Logger) *Client {
	return &Client{
		writer: writer,
		topic:  topic,
		log:    log,
		now:    time.Now,
	}
}

// NewDisabled создает клиента, который ничего не отправляет
func NewDisabled(log Logger) *Client {
	return &Client{log: log, now: time.Now}
}

// PublishChanges отправляет по одному событию на каждое изменение даты уборки
func (c *Client) PublishChanges(ctx context.Context, ownerID int64, changes []domain.AssignmentChange) error {
	if c.writer == nil || len(changes) == 0 {
		return nil
	}

	occurredAt := c.now().UTC()
	msgs := make([]kafka.Message, 0, len(changes))
	for _, change := range changes {
		event := CleaningDateChanged{
			EventID:      uuid.NewString(),
			EventType:    EventTypeCleaningDateChanged,
			OwnerID:      ownerID,
			BookingID:    change.BookingID,
			CleaningDate: change.CleaningDate,
			OccurredAt:   occurredAt,
		}

		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("%w: booking_id=%d: %v", ErrMarshal, change.BookingID, err)
		}

		msgs = append(msgs, kafka.Message{
			Topic: c.topic,
			Key:   []byte(strconv.FormatInt(change.BookingID, 10)),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(event.EventID)},
				{Key: "event_type", Value: []byte(event.EventType)},
			},
		})
	}

	if err := c.writer.WriteMessages(ctx, msgs...); err != nil {
		c.log.Error("Failed to publish %d cleaning changes for owner_id=%d: %v", len(msgs), ownerID, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	c.log.Info("Published %d cleaning changes for owner_id=%d", len(msgs), ownerID)
	return nil
}

// Close закрывает соединения с брокерами
func (c *Client) Close() error {
	if c.writer == nil {
		return nil
	}
	return c.writer.Close()
}
