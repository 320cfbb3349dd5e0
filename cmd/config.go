package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"freight/internal/core/application/usecases/commands"
)

const (
	NotifierKafka = "kafka"
	NotifierRedis = "redis"
	NotifierLog   = "log"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	NotifierDriver        string
	KafkaBrokers          []string
	KafkaTransitionsTopic string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	RedisChannel          string
	OutboxBatchSize       int
}

// ConfigFromEnv reads the configuration through getenv, falling back to defaults
// suitable for local development.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	redisDB, errRedisDB := strconv.Atoi(get("REDIS_DB", "0"))
	if errRedisDB != nil {
		errRedisDB = fmt.Errorf("REDIS_DB: %w", errRedisDB)
	}
	batchSize, errBatch := strconv.Atoi(get("OUTBOX_BATCH_SIZE", strconv.Itoa(commands.DefaultDispatchBatchSize)))
	if errBatch != nil {
		errBatch = fmt.Errorf("OUTBOX_BATCH_SIZE: %w", errBatch)
	}

	cfg := Config{
		HTTPPort:              get("HTTP_PORT", "8080"),
		DBHost:                get("DB_HOST", "localhost"),
		DBPort:                get("DB_PORT", "5432"),
		DBUser:                get("DB_USER", "postgres"),
		DBPassword:            get("DB_PASSWORD", ""),
		DBName:                get("DB_NAME", "freight"),
		DBSslMode:             get("DB_SSLMODE", "disable"),
		NotifierDriver:        strings.ToLower(get("NOTIFIER_DRIVER", NotifierLog)),
		KafkaBrokers:          splitList(get("KAFKA_BROKERS", "")),
		KafkaTransitionsTopic: get("KAFKA_TRANSITIONS_TOPIC", "freight.load-transitions"),
		RedisAddr:             get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         get("REDIS_PASSWORD", ""),
		RedisDB:               redisDB,
		RedisChannel:          get("REDIS_CHANNEL", "freight:transitions"),
		OutboxBatchSize:       batchSize,
	}

	if err := errors.Join(errRedisDB, errBatch, cfg.validate()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the connection string handed to the postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) validate() error {
	var errs []error
	switch c.NotifierDriver {
	case NotifierKafka:
		if len(c.KafkaBrokers) == 0 {
			errs = append(errs, errors.New("KAFKA_BROKERS is required for the kafka notifier"))
		}
	case NotifierRedis, NotifierLog:
	default:
		errs = append(errs, fmt.Errorf("NOTIFIER_DRIVER %q is not one of kafka, redis, log", c.NotifierDriver))
	}
	if c.OutboxBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.OutboxBatchSize))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
