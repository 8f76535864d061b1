package service

import (
	"testing"

	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/internal/domain/checkout/strategy"
	"checkout_solid/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockPaymentProcessor is a mock of PaymentProcessor
type MockPaymentProcessor struct {
	mock.Mock
}

func (m *MockPaymentProcessor) Process(order *model.Order) bool {
	args := m.Called(order)
	return args.Bool(0)
}

// MockOrderNotifier is a mock of OrderNotifier
type MockOrderNotifier struct {
	mock.Mock
}

func (m *MockOrderNotifier) Send(order *model.Order) {
	m.Called(order)
}

// giftCardProcessor 只在测试中定义的新渠道，用于验证 CheckoutService 对扩展开放
type giftCardProcessor struct {
	calls int
}

func (p *giftCardProcessor) Process(order *model.Order) bool {
	p.calls++
	return true
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.InfoLevel)
	orig := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = orig })
	return logs
}

func TestRunCheckout(t *testing.T) {
	t.Run("Payment success marks order paid and notifies", func(t *testing.T) {
		order := model.NewOrder("Andi", 500000)
		processor := new(MockPaymentProcessor)
		notifier := new(MockOrderNotifier)

		processor.On("Process", order).Return(true)
		notifier.On("Send", order).Return()

		ok := NewCheckoutService(processor, notifier).RunCheckout(order)

		assert.True(t, ok)
		assert.Equal(t, model.OrderStatusPaid, order.Status)
		processor.AssertExpectations(t)
		notifier.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Notifier sees the paid order", func(t *testing.T) {
		order := model.NewOrder("Andi", 500000)
		processor := new(MockPaymentProcessor)
		notifier := new(MockOrderNotifier)

		processor.On("Process", order).Return(true)
		notifier.On("Send", mock.MatchedBy(func(o *model.Order) bool {
			return o.Status == model.OrderStatusPaid
		})).Return()

		NewCheckoutService(processor, notifier).RunCheckout(order)

		notifier.AssertExpectations(t)
	})

	t.Run("Payment failure keeps order open and skips notification", func(t *testing.T) {
		logs := observeLogs(t)
		order := model.NewOrder("Budi", 100000)
		processor := new(MockPaymentProcessor)
		notifier := new(MockOrderNotifier)

		processor.On("Process", order).Return(false)

		ok := NewCheckoutService(processor, notifier).RunCheckout(order)

		assert.False(t, ok)
		assert.Equal(t, model.OrderStatusOpen, order.Status)
		notifier.AssertNotCalled(t, "Send", mock.Anything)
		assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	})

	t.Run("Failed retry never reverts a paid order", func(t *testing.T) {
		order := model.NewOrder("Andi", 500000)
		order.MarkPaid()
		processor := new(MockPaymentProcessor)
		notifier := new(MockOrderNotifier)

		processor.On("Process", order).Return(false)

		ok := NewCheckoutService(processor, notifier).RunCheckout(order)

		assert.False(t, ok)
		assert.Equal(t, model.OrderStatusPaid, order.Status)
		notifier.AssertNotCalled(t, "Send", mock.Anything)
	})
}

func TestRunCheckoutWithBuiltinStrategies(t *testing.T) {
	for _, name := range strategy.ProcessorNames() {
		t.Run(name, func(t *testing.T) {
			processor, err := strategy.NewProcessor(name)
			assert.NoError(t, err)

			order := model.NewOrder("Andi", 500000)
			ok := NewCheckoutService(processor, strategy.NewEmailOrderNotifier()).RunCheckout(order)

			assert.True(t, ok)
			assert.True(t, order.IsPaid())
		})
	}
}

func TestRunCheckoutIsStrategyAgnostic(t *testing.T) {
	run := func(p strategy.PaymentProcessor) (bool, *model.Order, []string) {
		logs := observeLogs(t)
		order := model.NewOrder("Andi", 500000)
		ok := NewCheckoutService(p, strategy.NewEmailOrderNotifier()).RunCheckout(order)

		var messages []string
		for _, entry := range logs.All() {
			messages = append(messages, entry.Message)
		}
		return ok, order, messages
	}

	ccOK, ccOrder, ccLogs := run(strategy.NewCreditCardStrategy())
	qrisOK, qrisOrder, qrisLogs := run(strategy.NewQRISStrategy())

	assert.Equal(t, ccOK, qrisOK)
	assert.Equal(t, ccOrder, qrisOrder)
	assert.Len(t, qrisLogs, len(ccLogs))
	// 只有策略自身的日志不同
	assert.NotEqual(t, ccLogs, qrisLogs)
	assert.Equal(t, ccLogs[0], qrisLogs[0])
	assert.Equal(t, ccLogs[len(ccLogs)-1], qrisLogs[len(qrisLogs)-1])
}

func TestRunCheckoutOpenForExtension(t *testing.T) {
	giftCard := &giftCardProcessor{}
	order := model.NewOrder("Citra", 75000)

	ok := NewCheckoutService(giftCard, strategy.NewEmailOrderNotifier()).RunCheckout(order)

	assert.True(t, ok)
	assert.Equal(t, 1, giftCard.calls)
	assert.Equal(t, model.OrderStatusPaid, order.Status)
}

func TestRunCheckoutScenarioAndi(t *testing.T) {
	order := model.NewOrder("Andi", 500000)

	ok := NewCheckoutService(strategy.NewCreditCardStrategy(), strategy.NewEmailOrderNotifier()).RunCheckout(order)

	assert.True(t, ok)
	assert.Equal(t, model.OrderStatusPaid, order.Status)
}
