package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局日志实例，InitLogger 之前为 no-op
var Log = zap.NewNop()

// InitLogger 初始化全局日志
// level: debug, info, warn, error
// env: dev 使用彩色控制台输出，其它环境使用 JSON
func InitLogger(level, env string) error {
	var cfg zap.Config
	if env == "" || env == "dev" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Named 返回带模块名的子日志
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// Sync 刷新缓冲区，程序退出前调用
func Sync() {
	_ = Log.Sync()
}
