package response

// 业务状态码
const (
	CodeSuccess = 0

	// 结账模块错误 100xx
	ErrPaymentFailed = 10001

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
