package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	App      AppConfig      `toml:"app"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
}

// AppConfig общие параметры приложения
type AppConfig struct {
	// Timezone часовой пояс сервера, в нем считаются недели и окна цен
	Timezone string `toml:"timezone"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// TTL время жизни записи кэша залов в секундах
	TTL    int    `toml:"ttl"`
	Prefix string `toml:"prefix"`
}

// CacheTTL возвращает TTL кэша как time.Duration
func (r RedisConfig) CacheTTL() time.Duration {
	return time.Duration(r.TTL) * time.Second
}

type RabbitMQConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
}

// Load читает конфиг из TOML файла, затем применяет переменные окружения
// .env файл подхватывается, если он есть рядом с бинарником
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{Timezone: "Local"},
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs:     LogsConfig{Level: "info"},
		Metrics:  MetricsConfig{Path: "/metrics", ServiceName: "hall_booking_service"},
		Redis:    RedisConfig{Addr: "localhost:6379", TTL: 300, Prefix: "hallbooking"},
		RabbitMQ: RabbitMQConfig{Queue: "record.created"},
	}
}

// applyEnv переопределяет секреты и адреса из окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Database.Port = port
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		c.RabbitMQ.URL = v
	}
	if v := os.Getenv("APP_TIMEZONE"); v != "" {
		c.App.Timezone = v
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (or JWT_SECRET) is required", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq.url is required when rabbitmq is enabled", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: app.timezone=%q: %v", ErrInvalidConfig, c.App.Timezone, err)
	}
	return nil
}

// Location часовой пояс сервера
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || c.App.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
}
