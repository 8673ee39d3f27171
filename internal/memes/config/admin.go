package config

// AdminConfig описывает базового администратора, создаваемого при первом запуске.
// Пустой Login отключает создание.
type AdminConfig struct {
	Login     string `yaml:"login" env:"MEMES_ADMIN_LOGIN" env-default:""`
	Password  string `yaml:"password" env:"MEMES_ADMIN_PASSWORD" env-default:""`
	Email     string `yaml:"email" env:"MEMES_ADMIN_EMAIL" env-default:""`
	FirstName string `yaml:"first_name" env:"MEMES_ADMIN_FIRST_NAME" env-default:"Admin"`
}
