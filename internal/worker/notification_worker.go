package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/medequip-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to domain events.
// Delivery is synchronous on the publishing request, so there is no goroutine to stop.
func StartNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) {
	if notifications == nil {
		return
	}
	notifications.RegisterHandlers()
	if logger != nil {
		logger.Info("notification worker started")
	}
}
