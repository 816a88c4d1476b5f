package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3000
	defaultEnv        = "development"
	defaultDSN        = "root:password@tcp(127.0.0.1:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"
)

// AppConfig holds runtime startup configuration, loaded from a YAML file with
// environment-variable fallbacks (a .env file is honored when present).
type AppConfig struct {
	Port           int        `yaml:"port"`
	DSN            string     `yaml:"dsn"`
	RedisURL       string     `yaml:"redis_url"`
	Env            string     `yaml:"env"` // "development" | "production"
	JWTSecret      string     `yaml:"jwt_secret"`
	AllowedOrigins []string   `yaml:"allowed_origins"`
	Mail           MailConfig `yaml:"mail"`
}

// MailConfig controls the optional new-message notification email.
type MailConfig struct {
	Enable bool   `yaml:"enable"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

// Load reads the YAML config file and applies env fallbacks. A missing file is
// not an error when env vars cover the required fields; a missing JWT secret is.
func Load(configPath string) (*AppConfig, error) {
	_ = godotenv.Load()

	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := &AppConfig{
		Port: defaultPort,
		DSN:  defaultDSN,
		Env:  defaultEnv,
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("jwt_secret is required (config file or JWT_SECRET)")
	}

	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
