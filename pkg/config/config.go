package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	HTTPPort int    `mapstructure:"HTTP_PORT"`

	Currency string `mapstructure:"CURRENCY"`

	DBHost string `mapstructure:"POSTGRES_HOST"`
	DBPort int    `mapstructure:"POSTGRES_PORT"`
	DBUser string `mapstructure:"POSTGRES_USER"`
	DBPass string `mapstructure:"POSTGRES_PASSWORD"`
	DBName string `mapstructure:"POSTGRES_DB"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	CacheTTLSec   int    `mapstructure:"CACHE_TTL_SEC"`

	KafkaBrokers []string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string   `mapstructure:"KAFKA_TOPIC"`

	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	PayPalClientID  string `mapstructure:"PAYPAL_CLIENT_ID"`
	PayPalSecret    string `mapstructure:"PAYPAL_SECRET"`
	PayPalLive      bool   `mapstructure:"PAYPAL_LIVE"`

	TokenKey string `mapstructure:"AUTH_TOKEN_KEY"`
}

// Load reads an optional app.env file in the working directory, then
// the process environment. Missing keys fall back to defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("CURRENCY", "usd")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "shopfront")
	v.SetDefault("POSTGRES_PASSWORD", "shopfront")
	v.SetDefault("POSTGRES_DB", "shopfront_db")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CACHE_TTL_SEC", 300)
	v.SetDefault("KAFKA_BROKERS", []string{})
	v.SetDefault("KAFKA_TOPIC", "shopfront.orders")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("PAYPAL_CLIENT_ID", "")
	v.SetDefault("PAYPAL_SECRET", "")
	v.SetDefault("PAYPAL_LIVE", false)
	v.SetDefault("AUTH_TOKEN_KEY", "")

	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
