package sender

import (
	"checkout_solid/internal/domain/notification/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const ChannelTelegram = "telegram"

func init() {
	Register(ChannelTelegram, func() Sender { return NewTelegramSender() })
}

// TelegramSender 后加入的渠道，NotificationService 和 Sender 均未改动
type TelegramSender struct{}

func NewTelegramSender() *TelegramSender {
	return &TelegramSender{}
}

func (s *TelegramSender) Send(user model.User, message string) {
	logger.Log.Info("[TELEGRAM] sending message",
		zap.String("user", user.Name),
		zap.String("to", user.Phone),
		zap.String("message", message),
	)
}

var _ Sender = (*TelegramSender)(nil)
