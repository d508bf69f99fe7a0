package config

import (
	"context"

	"github.com/SeaCloudHub/patterns/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"dev" mod:"trim,lcase"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
	SentryDSN string `envconfig:"SENTRY_DSN" mod:"trim"`

	// Platform selects the dialog variant; empty means detect from GOOS.
	Platform string `envconfig:"PLATFORM" mod:"trim,lcase" validate:"omitempty,oneof=windows html"`

	Editor struct {
		File       string `envconfig:"FILE" default:"test.txt" mod:"trim" validate:"required"`
		LogPath    string `envconfig:"LOG_PATH" default:"./file.txt" mod:"trim" validate:"required"`
		AdminEmail string `envconfig:"ADMIN_EMAIL" default:"admin@example.com" mod:"trim,lcase" validate:"required,email"`
	} `envconfig:"EDITOR"`

	NotificationHub struct {
		Endpoint string `envconfig:"ENDPOINT" mod:"trim" validate:"omitempty,url"`
		Token    string `envconfig:"TOKEN"`
		From     string `envconfig:"FROM" default:"editor" mod:"trim"`
	} `envconfig:"NOTIFICATION_HUB"`

	Redis struct {
		Addr     string `envconfig:"ADDR" mod:"trim"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
		Channel  string `envconfig:"CHANNEL" default:"editor-events" mod:"trim" validate:"required"`
	} `envconfig:"REDIS"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig(filenames ...string) (*Config, error) {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load(filenames...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process env")
	}

	if err := validation.Conform(context.Background(), &cfg); err != nil {
		return nil, errors.Wrap(err, "conform config")
	}

	if err := validation.Validate().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return &cfg, nil
}
