package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/minipay/minipay/internal/domain"
)

type Config struct {
	Server   ServerConfig    `koanf:"server"`
	Logger   LoggerConfig    `koanf:"logger"`
	Accounts []AccountConfig `koanf:"accounts" validate:"required,min=1,dive"`
	Demo     DemoConfig      `koanf:"demo"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AccountConfig seeds one ledger account at startup.
type AccountConfig struct {
	ID          string  `koanf:"id" validate:"required"`
	Balance     float64 `koanf:"balance" validate:"gte=0"`
	CardNumber  string  `koanf:"card_number"`
	PayPalEmail string  `koanf:"paypal_email"`
}

// DemoConfig is the ordered payment batch the demo driver runs.
type DemoConfig struct {
	Payments []PaymentConfig `koanf:"payments" validate:"dive"`
}

type PaymentConfig struct {
	Method      string  `koanf:"method" validate:"required,oneof=CREDIT_CARD PAYPAL"`
	Amount      float64 `koanf:"amount" validate:"required"`
	From        string  `koanf:"from" validate:"required"`
	To          string  `koanf:"to" validate:"required"`
	CardNumber  string  `koanf:"card_number"`
	PayPalEmail string  `koanf:"paypal_email"`
}

// ToAccount builds the domain account from its seed entry.
func (c AccountConfig) ToAccount() (*domain.Account, error) {
	return domain.NewAccount(c.ID, c.Balance, c.CardNumber, c.PayPalEmail)
}

// ToPayment builds the domain payment from its batch entry.
func (c PaymentConfig) ToPayment() domain.Payment {
	if domain.Method(c.Method) == domain.MethodPayPal {
		return domain.NewPayPalPayment(c.Amount, c.From, c.To, c.PayPalEmail)
	}
	return domain.NewCreditCardPayment(c.Amount, c.From, c.To, c.CardNumber)
}

// NewLogger builds the process logger from config, defaulting to info-level
// text output.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.Format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// LoadConfig reads the YAML config file (MINIPAY_CONFIG, default config.yaml)
// and applies MINIPAY_-prefixed environment overrides on top.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	path := os.Getenv("MINIPAY_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider("MINIPAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "MINIPAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
