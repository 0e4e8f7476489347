package contracts

import (
	"context"
	"proacolhe-service/internal/app/models"
)

type NotificationPublisher interface {
	PublishCompulsoryNotification(ctx context.Context, notification *models.CompulsoryNotification) error
}
