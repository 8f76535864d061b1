package checkout

import (
	"checkout_solid/internal/domain/checkout/handler"
	"checkout_solid/internal/domain/checkout/service"
	"checkout_solid/internal/domain/checkout/strategy"
	"checkout_solid/internal/pkg/registry"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

// CheckoutModule 结账模块
type CheckoutModule struct{}

func init() {
	registry.Register(&CheckoutModule{})
}

func (m *CheckoutModule) Name() string {
	return "checkout"
}

func (m *CheckoutModule) Priority() int {
	return 10
}

// Init 为每个启用的支付渠道装配一个 CheckoutService，并注册到 /checkout/<channel>
func (m *CheckoutModule) Init(ctx *registry.ModuleContext) error {
	cfg := ctx.Config.Checkout
	log := logger.Named(m.Name())

	notifier, err := strategy.NewNotifier(cfg.Notifier)
	if err != nil {
		return err
	}

	g := ctx.Router.Group("/checkout")
	for _, channel := range cfg.Channels {
		processor, err := strategy.NewProcessor(channel)
		if err != nil {
			return err
		}
		if ctx.Metrics != nil {
			processor = strategy.Instrumented(processor, ctx.Metrics)
		}

		h := handler.NewCheckoutHandler(service.NewCheckoutService(processor, notifier))
		g.POST("/"+channel, h.Checkout)

		log.Info("Checkout channel enabled", zap.String("channel", channel), zap.String("notifier", cfg.Notifier))
	}

	return nil
}
