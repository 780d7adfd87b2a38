package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/messaging/kafka"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:      "f6b1a2ce-6df0-4a5f-8e36-8d4f4cba2a01",
		Topic:   "payroll.run.lifecycle.v1",
		Payload: []byte(`{"event_type":"payroll_run.submitted"}`),
		Status:  kafka.OutboxStatusPending,
	}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	t.Run("missing id", func(t *testing.T) {
		event := valid
		event.ID = ""
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("missing topic", func(t *testing.T) {
		event := valid
		event.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("empty payload", func(t *testing.T) {
		event := valid
		event.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("unknown status", func(t *testing.T) {
		event := valid
		event.Status = "queued"
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})
}
