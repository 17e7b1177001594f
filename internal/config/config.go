package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort string `mapstructure:"APP_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     int    `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBScheme   string `mapstructure:"DB_SCHEME"`

	// --- Redis ---
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// --- Auth ---
	JWTSecret     string        `mapstructure:"AUTH_JWT_SECRET"`
	TokenTTL      time.Duration `mapstructure:"AUTH_TOKEN_TTL"`
	TokenIssuer   string        `mapstructure:"AUTH_ISSUER"`
	TokenAudience string        `mapstructure:"AUTH_AUDIENCE"`

	// --- Cache ---
	FeedTTLSeconds int `mapstructure:"CACHE_FEED_TTL"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  AppPort: %s\n", c.AppPort))
	sb.WriteString(fmt.Sprintf("  DBHost: %s\n", c.DBHost))
	sb.WriteString(fmt.Sprintf("  DBPort: %d\n", c.DBPort))
	sb.WriteString(fmt.Sprintf("  DBUser: %s\n", c.DBUser))
	sb.WriteString(fmt.Sprintf("  DBName: %s\n", c.DBName))
	sb.WriteString(fmt.Sprintf("  DBScheme: %s\n", c.DBScheme))

	// пароли и секреты маскируем
	if c.DBPassword != "" {
		sb.WriteString("  DBPassword: ********\n")
	} else {
		sb.WriteString("  DBPassword: (empty)\n")
	}

	sb.WriteString(fmt.Sprintf("  RedisAddr: %s\n", c.RedisAddr))
	sb.WriteString(fmt.Sprintf("  RedisDB: %d\n", c.RedisDB))
	if c.RedisPassword != "" {
		sb.WriteString("  RedisPassword: ********\n")
	} else {
		sb.WriteString("  RedisPassword: (empty)\n")
	}

	if c.JWTSecret != "" {
		sb.WriteString("  JWTSecret: ********\n")
	} else {
		sb.WriteString("  JWTSecret: (empty)\n")
	}
	sb.WriteString(fmt.Sprintf("  TokenTTL: %s\n", c.TokenTTL))
	sb.WriteString(fmt.Sprintf("  TokenIssuer: %s\n", c.TokenIssuer))
	sb.WriteString(fmt.Sprintf("  TokenAudience: %s\n", c.TokenAudience))
	sb.WriteString(fmt.Sprintf("  FeedTTLSeconds: %d\n", c.FeedTTLSeconds))

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Дефолты, не содержащие секретов
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_SCHEME", "public")
	v.SetDefault("AUTH_TOKEN_TTL", "1h")
	v.SetDefault("AUTH_ISSUER", "folk-is-love")
	v.SetDefault("AUTH_AUDIENCE", "folk-is-love-api")
	v.SetDefault("CACHE_FEED_TTL", 60)

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"APP_ENV", "APP_PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SCHEME",
		"REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD",
		"AUTH_JWT_SECRET", "AUTH_TOKEN_TTL", "AUTH_ISSUER", "AUTH_AUDIENCE",
		"CACHE_FEED_TTL",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}
	return &cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
