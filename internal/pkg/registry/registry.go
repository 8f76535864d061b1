package registry

import (
	"fmt"
	"sort"
	"sync"

	"checkout_solid/internal/pkg/config"
	"checkout_solid/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ModuleContext 模块初始化所需的上下文
type ModuleContext struct {
	Config  *config.Config
	Router  gin.IRouter
	Metrics *metrics.MetricsCollector
}

// Module 模块接口
type Module interface {
	// Name 返回模块名称
	Name() string

	// Init 初始化模块（依赖注入、路由注册等）
	Init(ctx *ModuleContext) error

	// Priority 返回初始化优先级（数字越小越先初始化）
	Priority() int
}

var (
	mu             sync.RWMutex
	moduleRegistry = make(map[string]Module)
)

// Register 注册模块
func Register(module Module) {
	mu.Lock()
	defer mu.Unlock()
	moduleRegistry[module.Name()] = module
}

// GetModules 按优先级返回所有已注册的模块
func GetModules() []Module {
	mu.RLock()
	modules := make([]Module, 0, len(moduleRegistry))
	for _, m := range moduleRegistry {
		modules = append(modules, m)
	}
	mu.RUnlock()

	sort.SliceStable(modules, func(i, j int) bool {
		if modules[i].Priority() != modules[j].Priority() {
			return modules[i].Priority() < modules[j].Priority()
		}
		return modules[i].Name() < modules[j].Name()
	})
	return modules
}

// InitModules 按优先级初始化所有模块
func InitModules(ctx *ModuleContext) error {
	for _, module := range GetModules() {
		if err := module.Init(ctx); err != nil {
			return fmt.Errorf("init module %s: %w", module.Name(), err)
		}
	}
	return nil
}
