package notification

import (
	"checkout_solid/internal/domain/notification/handler"
	"checkout_solid/internal/domain/notification/sender"
	"checkout_solid/internal/domain/notification/service"
	"checkout_solid/internal/pkg/registry"
	"checkout_solid/pkg/logger"

	"go.uber.org/zap"
)

// NotificationModule 通知模块
type NotificationModule struct{}

func init() {
	registry.Register(&NotificationModule{})
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) Priority() int {
	return 5
}

func (m *NotificationModule) Init(ctx *registry.ModuleContext) error {
	log := logger.Named(m.Name())
	g := ctx.Router.Group("/notifications")

	for _, channel := range ctx.Config.Notification.Channels {
		s, err := sender.New(channel)
		if err != nil {
			return err
		}
		if ctx.Metrics != nil {
			s = sender.Instrumented(s, ctx.Metrics)
		}

		h := handler.NewNotificationHandler(service.NewNotificationService(s))
		g.POST("/"+channel, h.Notify)

		log.Info("Notification channel enabled", zap.String("channel", channel))
	}

	return nil
}
