package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string        `validate:"required"`
	Port              string        `validate:"required,numeric"`
	DatabasePath      string        `validate:"required"`
	SessionSecret     string        `validate:"required"`
	JWTSecret         string        `validate:"required,min=16"`
	TokenTTL          time.Duration `validate:"gt=0"`
	GinMode           string        `validate:"oneof=debug release test"`
	LogLevel          string        `validate:"oneof=debug info warn error"`
	SuperRootUserName string
	SuperRootName     string
	SuperRootPassword string
}

var validate = validator.New()

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "3003")
	v.SetDefault("database_path", "bloglist.db")
	v.SetDefault("session_secret", "bloglist-dev-session")
	v.SetDefault("secret", "bloglist-dev-jwt-secret")
	v.SetDefault("token_ttl", time.Hour)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")

	port := strings.TrimSpace(v.GetString("port"))

	listenAddr := strings.TrimSpace(v.GetString("listen_addr"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	cfg := AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      strings.TrimSpace(v.GetString("database_path")),
		SessionSecret:     strings.TrimSpace(v.GetString("session_secret")),
		JWTSecret:         strings.TrimSpace(v.GetString("secret")),
		TokenTTL:          v.GetDuration("token_ttl"),
		GinMode:           strings.ToLower(strings.TrimSpace(v.GetString("gin_mode"))),
		LogLevel:          strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		SuperRootUserName: strings.TrimSpace(v.GetString("super_root_user_name")),
		SuperRootName:     strings.TrimSpace(v.GetString("super_root_name")),
		SuperRootPassword: strings.TrimSpace(v.GetString("super_root_password")),
	}

	if err := validate.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
