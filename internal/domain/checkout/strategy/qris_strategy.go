package strategy

import (
	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

const ChannelQRIS = "qris"

func init() {
	RegisterProcessor(ChannelQRIS, func() PaymentProcessor { return NewQRISStrategy() })
}

// QRISStrategy QRIS 扫码支付（模拟）
// 新增渠道只需新增一个实现文件，CheckoutService 无需改动
type QRISStrategy struct{}

func NewQRISStrategy() *QRISStrategy {
	return &QRISStrategy{}
}

func (s *QRISStrategy) Process(order *model.Order) bool {
	logger.Log.Info("Payment: processing QRIS",
		zap.String("customer", order.CustomerName),
		zap.Float64("amount", order.TotalPrice),
	)
	return true
}

var _ PaymentProcessor = (*QRISStrategy)(nil)
