package strategy

import (
	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const ChannelBankTransfer = "bank_transfer"

func init() {
	RegisterProcessor(ChannelBankTransfer, func() PaymentProcessor { return NewBankTransferStrategy() })
}

// BankTransferStrategy 银行转账（模拟）
type BankTransferStrategy struct{}

func NewBankTransferStrategy() *BankTransferStrategy {
	return &BankTransferStrategy{}
}

func (s *BankTransferStrategy) Process(order *model.Order) bool {
	logger.Log.Info("Payment: processing bank transfer",
		zap.String("customer", order.CustomerName),
		zap.Float64("amount", order.TotalPrice),
	)
	return true
}

var _ PaymentProcessor = (*BankTransferStrategy)(nil)
