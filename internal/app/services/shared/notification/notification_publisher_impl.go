package notification

import (
	"context"
	"errors"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/drivers/messaging"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var errNotConfirmed = errors.New("message not confirmed by broker")

// confirmation is satisfied by *amqp.DeferredConfirmation.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publishFunc func(ctx context.Context, msg amqp.Publishing) (confirmation, error)

// publisher sends compulsory notification records to a durable queue and
// waits for the broker confirm tied to each message's delivery tag.
type publisher struct {
	publish   publishFunc
	log       *zap.Logger
	queueName string
}

func NewNotificationPublisher(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.NotificationPublisher, error) {
	ch, err := messaging.DeclareDurableQueue(conn, queueName)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return newPublisher(channelPublish(ch, queueName), log, queueName), nil
}

func newPublisher(publish publishFunc, log *zap.Logger, queueName string) *publisher {
	return &publisher{
		publish:   publish,
		log:       log,
		queueName: queueName,
	}
}

func channelPublish(ch *amqp.Channel, queueName string) publishFunc {
	return func(ctx context.Context, msg amqp.Publishing) (confirmation, error) {
		deferred, err := ch.PublishWithDeferredConfirmWithContext(ctx, "", queueName, false, false, msg)
		if err != nil {
			return nil, err
		}
		if deferred == nil {
			return nil, errors.New("channel is not in confirm mode")
		}
		return deferred, nil
	}
}

func (p *publisher) PublishCompulsoryNotification(ctx context.Context, notification *models.CompulsoryNotification) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Info("notificationPublisher.PublishCompulsoryNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, notification.ConsultationID),
		zap.String(constvars.LoggingCIDKey, notification.CID),
	)

	if notification.PublishedAt.IsZero() {
		notification.PublishedAt = time.Now().UTC()
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    notification.ConsultationID,
		Timestamp:    notification.PublishedAt,
	}

	confirm, err := p.publish(ctx, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		p.log.Error("notificationPublisher.PublishCompulsoryNotification confirm not received",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errNotConfirmed, p.queueName)
	}

	p.log.Info("notificationPublisher.PublishCompulsoryNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
	)
	return nil
}
