package strategy

import (
	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const ChannelCreditCard = "credit_card"

func init() {
	RegisterProcessor(ChannelCreditCard, func() PaymentProcessor { return NewCreditCardStrategy() })
}

// CreditCardStrategy 信用卡支付（模拟）
type CreditCardStrategy struct{}

func NewCreditCardStrategy() *CreditCardStrategy {
	return &CreditCardStrategy{}
}

func (s *CreditCardStrategy) Process(order *model.Order) bool {
	logger.Log.Info("Payment: processing credit card",
		zap.String("customer", order.CustomerName),
		zap.Float64("amount", order.TotalPrice),
	)
	return true
}

// 确保实现了接口
var _ PaymentProcessor = (*CreditCardStrategy)(nil)
