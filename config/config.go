// File: /config/config.go
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Redis (optional) - enables cross-instance notification fan-out
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Logging
	LogLevel  string
	LogPretty bool

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "user:password@tcp(localhost:3306)/fitcircle?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("jwt_secret", "your-secret-key")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 2525)
	v.SetDefault("smtp_username", "")
	v.SetDefault("smtp_password", "")
	v.SetDefault("from_email", "noreply@fitcircle.app")
	v.SetDefault("from_name", "FitCircle")

	return &Config{
		Port:        v.GetString("port"),
		DatabaseURL: v.GetString("database_url"),
		JWTSecret:   v.GetString("jwt_secret"),

		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),

		LogLevel:  v.GetString("log_level"),
		LogPretty: v.GetBool("log_pretty"),

		SMTPHost:     v.GetString("smtp_host"),
		SMTPPort:     v.GetInt("smtp_port"),
		SMTPUsername: v.GetString("smtp_username"),
		SMTPPassword: v.GetString("smtp_password"),
		FromEmail:    v.GetString("from_email"),
		FromName:     v.GetString("from_name"),
	}
}
