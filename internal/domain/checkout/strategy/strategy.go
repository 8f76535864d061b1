package strategy

import "checkout_solid/internal/domain/checkout/model"

// PaymentProcessor 支付策略，CheckoutService 只依赖这个抽象
type PaymentProcessor interface {
	// Process 执行支付，返回是否成功
	Process(order *model.Order) bool
}

// OrderNotifier 支付成功后的订单通知
type OrderNotifier interface {
	Send(order *model.Order)
}
