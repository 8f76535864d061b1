package sender

import "checkout_solid/internal/domain/notification/model"

// NotificationRecorder 由 metrics.MetricsCollector 实现
type NotificationRecorder interface {
	ObserveNotification()
}

type instrumentedSender struct {
	next     Sender
	recorder NotificationRecorder
}

// Instrumented 包装任意 Sender，每次发送后上报一次
func Instrumented(next Sender, recorder NotificationRecorder) Sender {
	return &instrumentedSender{next: next, recorder: recorder}
}

func (s *instrumentedSender) Send(user model.User, message string) {
	s.next.Send(user, message)
	s.recorder.ObserveNotification()
}
