package middleware

import (
	"net/http"

	"checkout_solid/pkg/logger"
	"checkout_solid/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware 捕获 panic，记录日志并返回统一错误结构
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", c.GetString(TraceIDKey)),
		)
		response.Abort(c, http.StatusInternalServerError, response.ErrServerInternal, "internal server error")
	})
}
