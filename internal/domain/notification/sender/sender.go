package sender

import "checkout_solid/internal/domain/notification/model"

// Sender 通知发送渠道
// user 以值传递，实现无法修改调用方持有的 User
type Sender interface {
	Send(user model.User, message string)
}
