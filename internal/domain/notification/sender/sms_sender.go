package sender

import (
	"checkout_solid/internal/domain/notification/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const ChannelSMS = "sms"

func init() {
	Register(ChannelSMS, func() Sender { return NewSMSSender() })
}

// SMSSender 短信
type SMSSender struct{}

func NewSMSSender() *SMSSender {
	return &SMSSender{}
}

func (s *SMSSender) Send(user model.User, message string) {
	logger.Log.Info("[SMS] sending sms",
		zap.String("to", user.Phone),
		zap.String("message", message),
	)
}

var _ Sender = (*SMSSender)(nil)
