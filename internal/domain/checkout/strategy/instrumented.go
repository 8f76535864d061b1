package strategy

import "checkout_solid/internal/domain/checkout/model"

// PaymentRecorder 记录支付结果，由 metrics.MetricsCollector 实现
type PaymentRecorder interface {
	ObservePayment(success bool)
}

type instrumentedProcessor struct {
	next     PaymentProcessor
	recorder PaymentRecorder
}

// Instrumented 包装任意支付策略并上报结果，本身仍是 PaymentProcessor
func Instrumented(next PaymentProcessor, recorder PaymentRecorder) PaymentProcessor {
	return &instrumentedProcessor{next: next, recorder: recorder}
}

func (p *instrumentedProcessor) Process(order *model.Order) bool {
	ok := p.next.Process(order)
	p.recorder.ObservePayment(ok)
	return ok
}
