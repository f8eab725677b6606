package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the process configuration, read from the environment.
type Config struct {
	AppPort         string
	ShutdownTimeout time.Duration
	Database        Database
	RabbitMQ        RabbitMQ
	JWTSecret       string
	TokenTTL        time.Duration
	LogLevel        logrus.Level
	JSONLogs        bool
}

// Database selects the GORM dialector and its DSN.
type Database struct {
	Driver string
	DSN    string
}

// RabbitMQ configures product event publishing. An empty URL disables it.
type RabbitMQ struct {
	URL   string
	Queue string
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=catalog port=5432 sslmode=disable")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "product_events")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_JSON_LOG", false)
}

func fromViper(v *viper.Viper) (Config, error) {
	driver := v.GetString("DATABASE_DRIVER")
	if driver != DriverPostgres && driver != DriverSQLite {
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	level, err := logrus.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	shutdownTimeout, err := positiveDuration(v, "SHUTDOWN_TIMEOUT")
	if err != nil {
		return Config{}, err
	}
	tokenTTL, err := positiveDuration(v, "JWT_TTL")
	if err != nil {
		return Config{}, err
	}

	return Config{
		AppPort:         v.GetString("APP_PORT"),
		ShutdownTimeout: shutdownTimeout,
		Database: Database{
			Driver: driver,
			DSN:    v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQ{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("RABBITMQ_QUEUE"),
		},
		JWTSecret: v.GetString("JWT_SECRET"),
		TokenTTL:  tokenTTL,
		LogLevel:  level,
		JSONLogs:  v.GetBool("ENABLE_JSON_LOG"),
	}, nil
}

func positiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, d)
	}
	return d, nil
}
