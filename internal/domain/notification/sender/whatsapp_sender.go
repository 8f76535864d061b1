package sender

import (
	"checkout_solid/internal/domain/notification/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const ChannelWhatsApp = "whatsapp"

func init() {
	Register(ChannelWhatsApp, func() Sender { return NewWhatsAppSender() })
}

// WhatsAppSender 发送 WhatsApp 消息（模拟）
type WhatsAppSender struct{}

func NewWhatsAppSender() *WhatsAppSender {
	return &WhatsAppSender{}
}

func (s *WhatsAppSender) Send(user model.User, message string) {
	logger.Log.Info("[WHATSAPP] sending message",
		zap.String("to", user.Phone),
		zap.String("message", message),
	)
}

var _ Sender = (*WhatsAppSender)(nil)
