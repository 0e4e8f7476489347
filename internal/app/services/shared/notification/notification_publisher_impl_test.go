package notification

import (
	"context"
	"errors"
	"proacolhe-service/internal/app/models"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testQueue = "notificacoes_compulsorias"

type fakeConfirmation struct {
	done chan struct{}
	ack  bool
}

func newFakeConfirmation() *fakeConfirmation {
	return &fakeConfirmation{done: make(chan struct{})}
}

func (c *fakeConfirmation) resolve(ack bool) {
	c.ack = ack
	close(c.done)
}

func (c *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-c.done:
		return c.ack, nil
	}
}

// fakeBroker hands out one confirmation per message id.
type fakeBroker struct {
	mu        sync.Mutex
	published []amqp.Publishing
	confirms  map[string]*fakeConfirmation
	err       error
}

func newFakeBroker(ids ...string) *fakeBroker {
	b := &fakeBroker{confirms: make(map[string]*fakeConfirmation)}
	for _, id := range ids {
		b.confirms[id] = newFakeConfirmation()
	}
	return b
}

func (b *fakeBroker) publish(ctx context.Context, msg amqp.Publishing) (confirmation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return nil, b.err
	}
	b.published = append(b.published, msg)
	return b.confirms[msg.MessageId], nil
}

func notificationFor(consultationID string) *models.CompulsoryNotification {
	return &models.CompulsoryNotification{
		ConsultationID: consultationID,
		PatientID:      "patient-1",
		PatientName:    "Maria Clara",
		CID:            "A50.0",
		ConsultedAt:    "2025-03-10T12:00:00.000Z",
	}
}

func TestPublisher_PublishCompulsoryNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("Acked Message", func(t *testing.T) {
		broker := newFakeBroker("consult-1")
		broker.confirms["consult-1"].resolve(true)
		p := newPublisher(broker.publish, zap.NewNop(), testQueue)

		notification := notificationFor("consult-1")
		require.NoError(t, p.PublishCompulsoryNotification(ctx, notification))

		require.Len(t, broker.published, 1)
		msg := broker.published[0]
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, "consult-1", msg.MessageId)
		assert.False(t, notification.PublishedAt.IsZero())

		var decoded models.CompulsoryNotification
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, "A50.0", decoded.CID)
	})

	t.Run("Nacked Message", func(t *testing.T) {
		broker := newFakeBroker("consult-1")
		broker.confirms["consult-1"].resolve(false)
		p := newPublisher(broker.publish, zap.NewNop(), testQueue)

		err := p.PublishCompulsoryNotification(ctx, notificationFor("consult-1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), errNotConfirmed.Error())
	})

	t.Run("Publish Failure", func(t *testing.T) {
		broker := newFakeBroker()
		broker.err = errors.New("channel closed")
		p := newPublisher(broker.publish, zap.NewNop(), testQueue)

		err := p.PublishCompulsoryNotification(ctx, notificationFor("consult-1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel closed")
	})

	t.Run("Context Expires While Waiting", func(t *testing.T) {
		broker := newFakeBroker("consult-1")
		p := newPublisher(broker.publish, zap.NewNop(), testQueue)

		timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		err := p.PublishCompulsoryNotification(timeoutCtx, notificationFor("consult-1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
	})

	t.Run("Late Confirm Of Earlier Message Is Not Reused", func(t *testing.T) {
		broker := newFakeBroker("consult-1", "consult-2")
		p := newPublisher(broker.publish, zap.NewNop(), testQueue)

		timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		require.Error(t, p.PublishCompulsoryNotification(timeoutCtx, notificationFor("consult-1")))

		broker.confirms["consult-1"].resolve(true)
		broker.confirms["consult-2"].resolve(false)

		err := p.PublishCompulsoryNotification(ctx, notificationFor("consult-2"))
		require.Error(t, err, "the ack of consult-1 must not confirm consult-2")
		assert.Contains(t, err.Error(), errNotConfirmed.Error())
	})

	t.Run("Concurrent Messages Wait For Their Own Confirm", func(t *testing.T) {
		broker := newFakeBroker("consult-1", "consult-2")
		p := newPublisher(broker.publish, zap.NewNop(), testQueue)

		results := make(map[string]error)
		var mu sync.Mutex
		var wg sync.WaitGroup
		for _, id := range []string{"consult-1", "consult-2"} {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				err := p.PublishCompulsoryNotification(ctx, notificationFor(id))
				mu.Lock()
				results[id] = err
				mu.Unlock()
			}(id)
		}

		broker.confirms["consult-2"].resolve(true)
		broker.confirms["consult-1"].resolve(false)
		wg.Wait()

		assert.Error(t, results["consult-1"])
		assert.NoError(t, results["consult-2"])
	})
}
