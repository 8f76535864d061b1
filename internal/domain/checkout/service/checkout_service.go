package service

import (
	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/internal/domain/checkout/strategy"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

// CheckoutService 结账协调者：只负责编排支付与通知
type CheckoutService interface {
	RunCheckout(order *model.Order) bool
}

type checkoutService struct {
	processor strategy.PaymentProcessor
	notifier  strategy.OrderNotifier
}

// NewCheckoutService 通过构造函数注入支付策略和通知实现
func NewCheckoutService(processor strategy.PaymentProcessor, notifier strategy.OrderNotifier) CheckoutService {
	return &checkoutService{
		processor: processor,
		notifier:  notifier,
	}
}

// RunCheckout 执行结账
// 支付成功：订单置为 paid，发送通知，返回 true
// 支付失败：记录错误并返回 false，订单状态不变，不发送通知
func (s *checkoutService) RunCheckout(order *model.Order) bool {
	log := logger.Log.With(zap.String("customer", order.CustomerName))
	log.Info("Starting checkout", zap.Float64("total", order.TotalPrice))

	// 1. 委托支付
	if !s.processor.Process(order) {
		log.Error("Payment failed, transaction cancelled")
		return false
	}

	// 2. 更新状态
	order.MarkPaid()

	// 3. 委托通知
	s.notifier.Send(order)

	log.Info("Checkout succeeded", zap.String("status", string(order.Status)))
	return true
}
