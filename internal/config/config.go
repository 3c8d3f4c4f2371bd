package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, если не удалось прочитать TOML файл
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при невалидной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки JWT
type AuthConfig struct {
	SecretKey             string `toml:"secret_key"`
	AccessTokenTTLMinutes int    `toml:"access_token_ttl_minutes"`
}

// Load читает TOML, затем .env (если есть) и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.Host, "PG_HOST")
	setString(&c.Database.User, "PG_USERNAME")
	setString(&c.Database.Password, "PG_PASSWORD")
	setString(&c.Database.DBName, "PG_DB")
	setString(&c.Auth.SecretKey, "SECRET_KEY")
	setString(&c.Logs.Level, "LOG_LEVEL")

	if err := setInt(&c.Database.Port, "PG_PORT"); err != nil {
		return err
	}
	return setInt(&c.Auth.AccessTokenTTLMinutes, "ACCESS_TOKEN_EXPIRE_MINUTES")
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hotel_service"
	}

	if c.Auth.AccessTokenTTLMinutes == 0 {
		c.Auth.AccessTokenTTLMinutes = 30
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port out of range: %d", ErrInvalidConfig, c.Database.Port)
	}
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.user and database.dbname are required", ErrInvalidConfig)
	}
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("%w: auth.secret_key (SECRET_KEY) is required", ErrInvalidConfig)
	}
	if c.Auth.AccessTokenTTLMinutes < 0 {
		return fmt.Errorf("%w: auth.access_token_ttl_minutes must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quote(d.Host), d.Port, quote(d.User), quote(d.Password), quote(d.DBName), quote(d.SSLMode))
}

// quote экранирует значение для key=value формата libpq
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}
