package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultConfigPath используется, если путь к файлу конфигурации не передан явно.
const DefaultConfigPath = "config.yaml"

// Config содержит все настройки приложения.
type Config struct {
	Env       string         `yaml:"env"`
	Port      string         `yaml:"port"`
	SecretKey string         `yaml:"secret_key"`
	Locale    string         `yaml:"locale"`
	Database  DatabaseConfig `yaml:"database"`
	Redis     RedisConfig    `yaml:"redis"`
	AMQP      AMQPConfig     `yaml:"amqp"`
	Log       LogConfig      `yaml:"log"`
	CSRF      CSRFConfig     `yaml:"csrf"`
	CORS      CORSConfig     `yaml:"cors"`
	Flash     FlashConfig    `yaml:"flash"`
	Cookie    CookieConfig   `yaml:"cookie"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres | sqlite
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// RedisConfig пустой Addr означает хранение flash-сообщений в памяти процесса.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AMQPConfig пустой URL отключает публикацию событий в брокер.
type AMQPConfig struct {
	URL   string `yaml:"url"`
	Queue string `yaml:"queue"`
}

type LogConfig struct {
	Level     string `yaml:"level"`
	ErrorFile string `yaml:"error_file"`
}

type CSRFConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type FlashConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// CookieConfig nil Secure означает значение по окружению: secure вне development.
type CookieConfig struct {
	Secure *bool `yaml:"secure"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() Config {
	return Config{
		Env:       EnvDevelopment,
		Port:      "5000",
		SecretKey: "",
		Locale:    "en",
		Database: DatabaseConfig{
			Driver: "postgres",
			Host:   "localhost",
			Port:   "5432",
			Name:   "fyyur",
		},
		AMQP: AMQPConfig{Queue: "fyyur.listings"},
		Log: LogConfig{
			Level:     "info",
			ErrorFile: "error.log",
		},
		CSRF:  CSRFConfig{Enabled: true, TTL: time.Hour},
		CORS:  CORSConfig{Origins: []string{"*"}},
		Flash: FlashConfig{TTL: 30 * time.Minute},
	}
}

// Load читает YAML-файл (если он есть), затем применяет переменные окружения.
// Отсутствие файла по пути по умолчанию ошибкой не считается.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = envStr("FYYUR_CONFIG", DefaultConfigPath)
		explicit = os.Getenv("FYYUR_CONFIG") != ""
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// файл необязателен
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envStr("APP_ENV", cfg.Env)
	cfg.Port = envStr("PORT", cfg.Port)
	cfg.SecretKey = envStr("SECRET_KEY", cfg.SecretKey)
	cfg.Locale = envStr("LOCALE", cfg.Locale)

	cfg.Database.Driver = envStr("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.URL = envStr("DATABASE_URL", cfg.Database.URL)
	cfg.Database.Host = envStr("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = envStr("DB_PORT", cfg.Database.Port)
	cfg.Database.User = envStr("DB_USER", cfg.Database.User)
	cfg.Database.Password = envStr("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = envStr("DB_NAME", cfg.Database.Name)

	cfg.Redis.Addr = envStr("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envStr("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envInt("REDIS_DB", cfg.Redis.DB)

	cfg.AMQP.URL = envStr("AMQP_URL", cfg.AMQP.URL)
	cfg.AMQP.Queue = envStr("AMQP_QUEUE", cfg.AMQP.Queue)

	cfg.Log.Level = envStr("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.ErrorFile = envStr("ERROR_LOG_FILE", cfg.Log.ErrorFile)

	cfg.CSRF.Enabled = envBool("CSRF_ENABLED", cfg.CSRF.Enabled)
	cfg.CSRF.TTL = envDur("CSRF_TTL", cfg.CSRF.TTL)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORS.Origins = splitCSV(v)
	}

	cfg.Flash.TTL = envDur("FLASH_TTL", cfg.Flash.TTL)

	if os.Getenv("COOKIE_SECURE") != "" {
		secure := envBool("COOKIE_SECURE", cfg.SecureCookie())
		cfg.Cookie.Secure = &secure
	}
}

// Validate проверяет обязательные значения.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port is required")
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" && c.Database.Host == "" {
			return errors.New("config: database.url or database.host is required")
		}
	case "sqlite":
		if c.Database.URL == "" {
			return errors.New("config: database.url is required for sqlite (file path)")
		}
	default:
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}
	if c.CSRF.Enabled && c.SecretKey == "" {
		return errors.New("config: secret_key is required when csrf is enabled (set SECRET_KEY)")
	}
	if c.Flash.TTL <= 0 {
		return errors.New("config: flash.ttl must be positive")
	}
	return nil
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки.
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// SecureCookie сообщает, ставить ли флаг Secure на cookie сессии.
// Без явного cookie.secure флаг ставится везде, кроме development.
func (c Config) SecureCookie() bool {
	if c.Cookie.Secure != nil {
		return *c.Cookie.Secure
	}
	return !c.IsDevelopment()
}

// DSN возвращает строку подключения для выбранного драйвера.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
