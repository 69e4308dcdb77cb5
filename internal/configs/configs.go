package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppHost                string `yaml:"app_host"`
	AppPort                string `yaml:"app_port"`
	DatabaseDSN            string `yaml:"database_dsn"`
	RateLimit              int    `yaml:"rate_limit_per_minute"`
	RedisHost              string `yaml:"redis_host"`
	RedisPort              string `yaml:"redis_port"`
	RollupLockKeyPrefix    string `yaml:"rollup_lock_key_prefix"`
	RollupLockTTLSeconds   int    `yaml:"rollup_lock_ttl_seconds"`
	RollupLockWaitSeconds  int    `yaml:"rollup_lock_wait_seconds"`
	JWTSecret              string `yaml:"jwt_secret"`
	LogLevel               string `yaml:"log_level"`
	LogFormat              string `yaml:"log_format"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

func Default() Config {
	return Config{
		AppHost:                "127.0.0.1",
		AppPort:                "8080",
		DatabaseDSN:            "tasks.db",
		RateLimit:              60,
		RedisPort:              "6379",
		RollupLockKeyPrefix:    "taskflow:rollup:",
		RollupLockTTLSeconds:   10,
		RollupLockWaitSeconds:  5,
		LogLevel:               "info",
		LogFormat:              "text",
		ShutdownTimeoutSeconds: 20,
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, and finally environment variables, which win over both.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// RedisAddr is empty when no Redis host is configured; rollups then lock
// in-process only.
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func applyEnv(cfg *Config) error {
	cfg.AppHost = getEnv("APP_HOST", cfg.AppHost)
	cfg.AppPort = getEnv("APP_PORT", cfg.AppPort)
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.RedisHost = getEnv("REDIS_HOST", cfg.RedisHost)
	cfg.RedisPort = getEnv("REDIS_PORT", cfg.RedisPort)
	cfg.RollupLockKeyPrefix = getEnv("ROLLUP_LOCK_KEY_PREFIX", cfg.RollupLockKeyPrefix)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	var err error
	ints := []struct {
		key string
		dst *int
	}{
		{"RATE_LIMIT_PER_MINUTE", &cfg.RateLimit},
		{"ROLLUP_LOCK_TTL_SECONDS", &cfg.RollupLockTTLSeconds},
		{"ROLLUP_LOCK_WAIT_SECONDS", &cfg.RollupLockWaitSeconds},
		{"SHUTDOWN_TIMEOUT_SECONDS", &cfg.ShutdownTimeoutSeconds},
	}
	for _, v := range ints {
		if *v.dst, err = getEnvAsInt(v.key, *v.dst); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.AppHost == "" || cfg.AppPort == "" {
		return errors.New("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1 and 8080)")
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.RollupLockTTLSeconds <= 0 {
		return errors.New("ROLLUP_LOCK_TTL_SECONDS must be greater than 0")
	}
	if cfg.RollupLockWaitSeconds <= 0 {
		return errors.New("ROLLUP_LOCK_WAIT_SECONDS must be greater than 0")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
