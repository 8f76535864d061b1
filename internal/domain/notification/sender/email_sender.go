package sender

import (
	"checkout_solid/internal/domain/notification/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const ChannelEmail = "email"

func init() {
	Register(ChannelEmail, func() Sender { return NewEmailSender() })
}

// EmailSender 发送邮件（模拟），收件地址取 user.Email
type EmailSender struct{}

func NewEmailSender() *EmailSender {
	return &EmailSender{}
}

func (s *EmailSender) Send(user model.User, message string) {
	logger.Log.Info("[EMAIL] sending email",
		zap.String("to", user.Email),
		zap.String("message", message),
	)
}

var _ Sender = (*EmailSender)(nil)
