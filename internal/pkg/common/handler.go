package handler

import (
	"time"

	"checkout_solid/pkg/response"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Health 健康检查
// @Summary 健康检查
// @Tags Common
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}
