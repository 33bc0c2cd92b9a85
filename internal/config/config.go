package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Razorpay Razorpay
	Checkout Checkout `validate:"required"`

	Cache Cache

	Logs Logs

	// Журнал пожертвований опционален: nil, если не настроен
	Kafka    *Kafka    `validate:"omitempty"`
	Postgres *Postgres `validate:"omitempty"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url|eq=*"`
}

// Razorpay - серверные креды шлюза, секрет никогда не уходит клиенту
type Razorpay struct {
	KeyID     string
	KeySecret string
	Timeout   time.Duration `validate:"gt=0"`
}

// Checkout - публичные настройки виджета оплаты
type Checkout struct {
	Name          string        `validate:"required"`
	Description   string
	Logo          string        `validate:"omitempty,url"`
	ThemeColor    string        `validate:"required,hexcolor"`
	Currency      string        `validate:"required,iso4217"`
	PresetAmounts []int         `validate:"required,min=1,dive,gt=0"`
	DefaultAmount int           `validate:"gt=0"`
	Purpose       string
	Timeout       time.Duration `validate:"gte=0"`
	RetryEnabled  bool
	RetryMaxCount int           `validate:"gte=0"`
	Methods       []string      `validate:"required,min=1,dive,oneof=netbanking card upi wallet"`

	// Закрытие виджета по Esc и подтверждение закрытия
	ModalEscape       bool
	ModalConfirmClose bool
}

type Cache struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type Logs struct {
	LokiURL string `validate:"omitempty,url"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

func New() Config {
	conf := Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "*"), ","),
		},

		Razorpay: Razorpay{
			KeyID:     env("RAZORPAY_KEY_ID", ""),
			KeySecret: env("RAZORPAY_KEY_SECRET", ""),
			Timeout:   envDuration("RAZORPAY_TIMEOUT", 10*time.Second),
		},

		Checkout: Checkout{
			Name:          env("CHECKOUT_NAME", "GullyStray Care"),
			Description:   env("CHECKOUT_DESCRIPTION", "Thank you for your contribution"),
			Logo:          env("CHECKOUT_LOGO_URL", ""),
			ThemeColor:    env("CHECKOUT_THEME_COLOR", "#F37254"),
			Currency:      env("CHECKOUT_CURRENCY", "INR"),
			PresetAmounts: envInts("CHECKOUT_PRESET_AMOUNTS", []int{100, 500, 1000, 2500, 5000}),
			DefaultAmount: envInt("CHECKOUT_DEFAULT_AMOUNT", 500),
			Purpose:       env("CHECKOUT_PURPOSE", "Animal Rescue"),
			Timeout:       envDuration("CHECKOUT_TIMEOUT", 300*time.Second),
			RetryEnabled:  envBool("CHECKOUT_RETRY_ENABLED", true),
			RetryMaxCount: envInt("CHECKOUT_RETRY_MAX_COUNT", 3),
			Methods:       envStrings("CHECKOUT_METHODS", []string{"netbanking", "card", "upi", "wallet"}),

			ModalEscape:       envBool("CHECKOUT_MODAL_ESCAPE", true),
			ModalConfirmClose: envBool("CHECKOUT_MODAL_CONFIRM_CLOSE", false),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 10000),
			TTL:      envDuration("CACHE_TTL", 24*time.Hour),
		},

		Logs: Logs{
			LokiURL: env("LOKI_URL", ""),
		},
	}

	if brokers := env("KAFKA_BROKERS", ""); brokers != "" {
		conf.Kafka = &Kafka{
			GroupID: env("KAFKA_GROUP_ID", "donation-service"),
			Topic:   env("KAFKA_TOPIC", "donations-verified"),
			Brokers: strings.Split(brokers, ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		}
	}

	if host := env("POSTGRES_HOST", ""); host != "" {
		conf.Postgres = &Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     host,
			DBName:   env("POSTGRES_DB", "donations"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		}
	}

	return conf
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GatewayConfigured сообщает, заданы ли креды Razorpay
func (c Config) GatewayConfigured() bool {
	return c.Razorpay.KeyID != "" && c.Razorpay.KeySecret != ""
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envInts(key string, fallback []int) []int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parts := strings.Split(value, ",")
	res := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fallback
		}
		res = append(res, i)
	}
	return res
}

func envStrings(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
