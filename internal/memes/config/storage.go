package config

import (
	"time"

	"memhub/pkg/resilience"
)

// Хранилища изображений.
const (
	StorageS3    = "s3"
	StorageRedis = "redis"
)

// StorageConfig содержит настройки хранилища изображений.
type StorageConfig struct {
	Backend          string        `yaml:"backend" env:"MEMES_STORAGE_BACKEND" env-default:"s3"`
	Endpoint         string        `yaml:"endpoint" env:"MEMES_STORAGE_ENDPOINT" env-default:"localhost:9000"`
	Bucket           string        `yaml:"bucket" env:"MEMES_STORAGE_BUCKET" env-default:"memes"`
	AccessKey        string        `yaml:"access_key" env:"MEMES_STORAGE_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey        string        `yaml:"secret_key" env:"MEMES_STORAGE_SECRET_KEY" env-default:"minioadmin"`
	Region           string        `yaml:"region" env:"MEMES_STORAGE_REGION" env-default:"us-east-1"`
	Secure           bool          `yaml:"secure" env:"MEMES_STORAGE_SECURE" env-default:"false"`
	RetryAttempts    int           `yaml:"retry_attempts" env:"MEMES_STORAGE_RETRY_ATTEMPTS" env-default:"3"`
	BreakerThreshold int           `yaml:"breaker_threshold" env:"MEMES_STORAGE_BREAKER_THRESHOLD" env-default:"5"`
	BreakerTimeout   time.Duration `yaml:"breaker_timeout" env:"MEMES_STORAGE_BREAKER_TIMEOUT" env-default:"10s"`
}

// GetRetryConfig возвращает параметры повторов для обращений к хранилищу.
func (s *StorageConfig) GetRetryConfig() resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	if s.RetryAttempts > 0 {
		cfg.MaxAttempts = s.RetryAttempts
	}
	return cfg
}

// GetCircuitBreakerConfig возвращает параметры Circuit Breaker хранилища.
func (s *StorageConfig) GetCircuitBreakerConfig() resilience.CircuitBreakerConfig {
	cfg := resilience.DefaultCircuitBreakerConfig()
	if s.BreakerThreshold > 0 {
		cfg.ErrorThreshold = s.BreakerThreshold
	}
	if s.BreakerTimeout > 0 {
		cfg.Timeout = s.BreakerTimeout
	}
	return cfg
}
