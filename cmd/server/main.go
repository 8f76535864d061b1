package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	_ "checkout_solid/internal/domain/checkout"
	_ "checkout_solid/internal/domain/common"
	_ "checkout_solid/internal/domain/notification"
	"checkout_solid/internal/pkg/config"
	"checkout_solid/internal/pkg/middleware"
	"checkout_solid/internal/pkg/registry"
	"checkout_solid/pkg/logger"
	"checkout_solid/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	config.LoadConfig()
	cfg := config.GlobalConfig

	if err := logger.InitLogger(cfg.Log.Level, cfg.App.Env); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	mc := metrics.NewMetricsCollector(nil)
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.QPS), cfg.RateLimit.Burst)
	evictCtx, stopEviction := context.WithCancel(context.Background())
	defer stopEviction()
	limiter.StartEviction(evictCtx, time.Minute, 10*time.Minute)

	r.Use(
		middleware.RecoveryMiddleware(),
		middleware.TraceMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.MetricsMiddleware(mc),
		cors.New(corsConfig(cfg.CORS)),
		middleware.RateLimitMiddleware(limiter),
	)

	if err := registry.InitModules(&registry.ModuleContext{
		Config:  &cfg,
		Router:  r,
		Metrics: mc,
	}); err != nil {
		logger.Log.Fatal("Failed to init modules", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server error", zap.Error(err))
		}
	}()

	// 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("Server exiting")
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	return c
}
