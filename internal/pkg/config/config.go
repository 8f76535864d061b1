package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	App          AppConfig          `mapstructure:"app"`
	Log          LogConfig          `mapstructure:"log"`
	Checkout     CheckoutConfig     `mapstructure:"checkout"`
	Notification NotificationConfig `mapstructure:"notification"`
	RateLimit    RateLimitConfig    `mapstructure:"ratelimit"`
	CORS         CORSConfig         `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type AppConfig struct {
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CheckoutConfig 结账流程装配
type CheckoutConfig struct {
	Channels []string `mapstructure:"channels"` // 启用的支付渠道，如 credit_card, qris
	Notifier string   `mapstructure:"notifier"` // 支付成功后的通知方式
}

// NotificationConfig 通知流程装配
type NotificationConfig struct {
	Channels []string `mapstructure:"channels"` // email, sms, whatsapp, telegram
}

type RateLimitConfig struct {
	QPS   float64 `mapstructure:"qps"`
	Burst int     `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

var GlobalConfig Config

var envKeyReplacer = strings.NewReplacer(".", "_")

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}

	if len(c.Checkout.Channels) == 0 {
		return errors.New("at least one checkout channel must be enabled")
	}
	if c.Checkout.Notifier == "" {
		return errors.New("checkout notifier is required")
	}

	if len(c.Notification.Channels) == 0 {
		return errors.New("at least one notification channel must be enabled")
	}

	if c.RateLimit.QPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("invalid rate limit: qps=%v burst=%d", c.RateLimit.QPS, c.RateLimit.Burst)
	}

	return nil
}

// SetDefaults 设置默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.debug", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("checkout.channels", []string{"credit_card", "qris", "bank_transfer"})
	v.SetDefault("checkout.notifier", "email")
	v.SetDefault("notification.channels", []string{"email", "sms", "whatsapp", "telegram"})
	v.SetDefault("ratelimit.qps", 100)
	v.SetDefault("ratelimit.burst", 200)
	v.SetDefault("cors.allow_origins", []string{"*"})
}

// Load 从给定的 viper 实例读取并验证配置
// 配置文件不存在时只使用默认值和环境变量
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Printf("Warning: Config file not found, using defaults or env vars: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig 加载配置到 GlobalConfig
func LoadConfig() {
	// 获取环境变量，默认为dev
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	// 根据环境选择配置文件
	configName := "config"
	if env != "dev" {
		configName = "config." + env
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// 绑定环境变量，例如 SERVER_PORT
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	GlobalConfig = *cfg

	log.Printf("Configuration loaded and validated successfully. Environment: %s", GlobalConfig.App.Env)
}
