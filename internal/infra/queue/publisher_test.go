package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestPublisher_InvalidURL(t *testing.T) {
	p := NewPublisher("not-an-amqp-url", "", nopLogger{})

	err := p.PublishRecordCreated(context.Background(), RecordCreatedEvent{RecordID: 1})
	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, RecordCreatedQueue, p.queue)
}

func TestRecordCreatedEvent_JSON(t *testing.T) {
	event := RecordCreatedEvent{
		RecordID:     10,
		HallID:       2,
		UserID:       7,
		Price:        5000,
		Prepayment:   1500,
		Reservations: []ReservationEvent{{StartAt: 1700000000, Length: 120}},
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "record_id")
	assert.Contains(t, raw, "prepayment")
	assert.Len(t, raw["reservations"], 1)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishRecordCreated(context.Background(), RecordCreatedEvent{}))
}
