package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`

	Port           int      `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqTriggerExchange   string `env:"RABBITMQ_TRIGGER_EXCHANGE" envDefault:"trigger"`
	RabbitmqTriggerFiredQueue string `env:"RABBITMQ_TRIGGER_FIRED_QUEUE" envDefault:"trigger-fired"`

	TriggerPollPeriod    time.Duration `env:"TRIGGER_POLL_PERIOD" envDefault:"15s"`
	TriggerPollBatchSize uint          `env:"TRIGGER_POLL_BATCH_SIZE" envDefault:"100"`

	EventsStreamID        string `env:"EVENTS_STREAM_ID" envDefault:"events"`
	NotificationsStreamID string `env:"NOTIFICATIONS_STREAM_ID" envDefault:"notifications"`

	EmailNotificationsEnabled bool   `env:"EMAIL_NOTIFICATIONS_ENABLED"`
	EmailSender               string `env:"EMAIL_SENDER"`
	EmailRecipient            string `env:"EMAIL_RECIPIENT"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
