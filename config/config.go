package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CheckoutConfig holds the wizard timing and lifecycle parameters.
// Every "processing" phase in the checkout flow is a simulated delay;
// these values control how long each one runs.
type CheckoutConfig struct {
	ProcessingDelay           time.Duration `mapstructure:"processing_delay"`            // payment processing -> success
	ProcessingMessageInterval time.Duration `mapstructure:"processing_message_interval"` // staged message rotation
	RedeemDelay               time.Duration `mapstructure:"redeem_delay"`                // redeemProcessing -> redeemSuccess
	CreditingDelay            time.Duration `mapstructure:"crediting_delay"`             // crediting -> credited sub-state
	SendingDelay              time.Duration `mapstructure:"sending_delay"`               // sending -> sent sub-state
	RedeemValue               int64         `mapstructure:"redeem_value"`                // Mobi credited for a valid PIN
	SessionTTL                time.Duration `mapstructure:"session_ttl"`                 // idle session expiry
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MVG_ (Mobi Voucher Gateway).
// Nested keys use underscore: MVG_REDIS_HOST, MVG_CHECKOUT_SESSION_TTL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("checkout.processing_delay", "3200ms")
	v.SetDefault("checkout.processing_message_interval", "800ms")
	v.SetDefault("checkout.redeem_delay", "3s")
	v.SetDefault("checkout.crediting_delay", "1200ms")
	v.SetDefault("checkout.sending_delay", "1500ms")
	v.SetDefault("checkout.redeem_value", 500)
	v.SetDefault("checkout.session_ttl", "30m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MVG_REDIS_HOST -> redis.host
	v.SetEnvPrefix("MVG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required -- env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
