package strategy

import (
	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const NotifierEmail = "email"

func init() {
	RegisterNotifier(NotifierEmail, func() OrderNotifier { return NewEmailOrderNotifier() })
}

// EmailOrderNotifier 发送订单确认邮件（模拟）
type EmailOrderNotifier struct{}

func NewEmailOrderNotifier() *EmailOrderNotifier {
	return &EmailOrderNotifier{}
}

func (n *EmailOrderNotifier) Send(order *model.Order) {
	logger.Log.Info("Notif: sending confirmation email",
		zap.String("customer", order.CustomerName),
		zap.String("status", string(order.Status)),
	)
}

var _ OrderNotifier = (*EmailOrderNotifier)(nil)
