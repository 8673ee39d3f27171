package config

// PasswordConfig содержит параметры детерминированного хеширования паролей.
type PasswordConfig struct {
	Algorithm  string `yaml:"algorithm" env:"MEMES_PASSWORD_ALGORITHM" env-default:"sha256"`
	Salt       string `yaml:"salt" env:"MEMES_PASSWORD_SALT" env-default:"memhub-salt-change-me"`
	Iterations int    `yaml:"iterations" env:"MEMES_PASSWORD_ITERATIONS" env-default:"100000"`
}
