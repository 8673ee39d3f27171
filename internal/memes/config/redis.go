package config

import (
	"time"

	"memhub/pkg/db/redis"
)

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"MEMES_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"MEMES_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"MEMES_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"MEMES_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"MEMES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"MEMES_REDIS_TIMEOUT" env-default:"5s"`
}

// ClientConfig возвращает настройки клиента pkg/db/redis.
func (r *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  r.Timeout,
	}
}
