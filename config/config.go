package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"3001"`

	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"protechub"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPwd  string `env:"REDIS_PASSWORD"`

	WebOrigin  string        `env:"WEB_ORIGIN" envDefault:"http://localhost:3000"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Usuário Admin semeado quando o banco não tem nenhum.
	BootstrapEmail string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapSenha string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Load lê .env (se existir) e as variáveis de ambiente.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN monta a string de conexão do Postgres.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
