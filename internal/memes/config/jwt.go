package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	AccessSecret    string `yaml:"access_secret" env:"MEMES_JWT_ACCESS_SECRET" env-default:"access-secret-change-me-in-production"`
	RefreshSecret   string `yaml:"refresh_secret" env:"MEMES_JWT_REFRESH_SECRET" env-default:"refresh-secret-change-me-in-production"`
	AccessTokenTTL  string `yaml:"access_token_ttl" env:"MEMES_JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl" env:"MEMES_JWT_REFRESH_TOKEN_TTL" env-default:"24h"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil || duration <= 0 {
		return 15 * time.Minute
	}
	return duration
}

// GetRefreshTokenTTL возвращает продолжительность времени жизни refresh токена.
func (c *JWTConfig) GetRefreshTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.RefreshTokenTTL)
	if err != nil || duration <= 0 {
		return 24 * time.Hour
	}
	return duration
}
