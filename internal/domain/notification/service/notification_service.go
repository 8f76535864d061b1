package service

import (
	"checkout_solid/internal/domain/notification/model"
	"checkout_solid/internal/domain/notification/sender"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

// NotificationService 通知协调者，依赖 sender.Sender 抽象
type NotificationService interface {
	Notify(user model.User, message string)
}

type notificationService struct {
	sender sender.Sender
}

func NewNotificationService(s sender.Sender) NotificationService {
	return &notificationService{sender: s}
}

// Notify 无条件委托给注入的 Sender
func (s *notificationService) Notify(user model.User, message string) {
	s.sender.Send(user, message)
	logger.Log.Info("Notification sent", zap.String("user", user.Name))
}
