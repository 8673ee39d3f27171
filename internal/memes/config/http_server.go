package config

import (
	"fmt"
	"time"
)

// HTTPConfig конфигурация HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"MEMES_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"MEMES_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"MEMES_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"MEMES_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"MEMES_HTTP_IDLE_TIMEOUT" env-default:"60s"`
	// BodyLimit - максимальный размер тела запроса в байтах, включая загружаемое изображение.
	BodyLimit    int           `yaml:"body_limit" env:"MEMES_HTTP_BODY_LIMIT" env-default:"10485760"`
	CookieSecure bool          `yaml:"cookie_secure" env:"MEMES_HTTP_COOKIE_SECURE" env-default:"false"`
}

// GetAddress возвращает адрес для HTTP сервера.
func (h *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
