package common

import (
	commonHandler "checkout_solid/internal/pkg/common"
	"checkout_solid/internal/pkg/registry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CommonModule 通用功能模块
type CommonModule struct{}

func init() {
	registry.Register(&CommonModule{})
}

func (m *CommonModule) Name() string {
	return "common"
}

func (m *CommonModule) Priority() int {
	return 100 // 最后初始化
}

func (m *CommonModule) Init(ctx *registry.ModuleContext) error {
	setupRoutes(ctx.Router)
	return nil
}

func setupRoutes(r gin.IRouter) {
	r.GET("/health", commonHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
