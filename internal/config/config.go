// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultOrigins are always allowed; ALLOWED_ORIGINS extends them.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
	"http://localhost:8001",
}

type Config struct {
	Database struct {
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		SSLMode    string `yaml:"sslmode"`
		SearchPath string `yaml:"schema"`
	} `yaml:"database"`
	JWT struct {
		Secret       string        `yaml:"secret"`
		Algorithm    string        `yaml:"algorithm"`
		Issuer       string        `yaml:"issuer"`
		Audience     string        `yaml:"audience"`
		ExpiryPeriod time.Duration `yaml:"expiry_period"`
	} `yaml:"jwt"`
	Server struct {
		Port           string        `yaml:"port"`
		ReadTimeout    time.Duration `yaml:"read_timeout"`
		WriteTimeout   time.Duration `yaml:"write_timeout"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"server"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	Analytics struct {
		HourlyRate           float64 `yaml:"hourly_rate"`
		TrendPoints          int     `yaml:"trend_points"`
		HistoryDefaultMonths int     `yaml:"history_default_months"`
		TrendsDefaultMonths  int     `yaml:"trends_default_months"`
	} `yaml:"analytics"`
	Debug bool `yaml:"debug"`
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_PATH, and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the development configuration.
func Defaults() *Config {
	cfg := &Config{}

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "ai_hub_dev"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SearchPath = "public"

	cfg.JWT.Secret = "dev-secret-key-change-in-production"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.Issuer = "https://login.dewa.gov.ae"
	cfg.JWT.Audience = "ai-hub.dewa.gov.ae"
	cfg.JWT.ExpiryPeriod = time.Hour * 8

	cfg.Server.Port = "8000"
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.RequestTimeout = time.Second * 30

	cfg.CORS.AllowedOrigins = append([]string(nil), defaultOrigins...)

	cfg.Analytics.HourlyRate = 75
	cfg.Analytics.TrendPoints = 6
	cfg.Analytics.HistoryDefaultMonths = 12
	cfg.Analytics.TrendsDefaultMonths = 6

	return cfg
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	// Database configuration
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.SearchPath = getEnv("DB_SCHEMA", c.Database.SearchPath)

	// JWT configuration
	c.JWT.Secret = getEnv("JWT_SECRET", c.JWT.Secret)
	c.JWT.Algorithm = getEnv("JWT_ALGORITHM", c.JWT.Algorithm)
	c.JWT.Issuer = getEnv("JWT_ISSUER", c.JWT.Issuer)
	c.JWT.Audience = getEnv("JWT_AUDIENCE", c.JWT.Audience)
	c.JWT.ExpiryPeriod = getEnvDuration("JWT_EXPIRY", c.JWT.ExpiryPeriod)

	// Server configuration
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	c.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", c.Server.RequestTimeout)

	if extra := getEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.CORS.AllowedOrigins = append(c.CORS.AllowedOrigins, origin)
			}
		}
	}

	// Analytics configuration
	c.Analytics.HourlyRate = getEnvFloat("HOURLY_RATE", c.Analytics.HourlyRate)
	c.Analytics.TrendPoints = getEnvInt("TREND_POINTS", c.Analytics.TrendPoints)
	c.Analytics.HistoryDefaultMonths = getEnvInt("HISTORY_DEFAULT_MONTHS", c.Analytics.HistoryDefaultMonths)
	c.Analytics.TrendsDefaultMonths = getEnvInt("TRENDS_DEFAULT_MONTHS", c.Analytics.TrendsDefaultMonths)

	c.Debug = getEnvBool("DEBUG", c.Debug)
}

// Validate rejects configurations the services cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("config: jwt.secret must be set"))
	}
	if c.JWT.Algorithm != "HS256" && c.JWT.Algorithm != "HS384" && c.JWT.Algorithm != "HS512" {
		errs = append(errs, fmt.Errorf("config: unsupported jwt.algorithm %q", c.JWT.Algorithm))
	}
	if c.Analytics.HourlyRate <= 0 {
		errs = append(errs, errors.New("config: analytics.hourly_rate must be positive"))
	}
	if c.Analytics.TrendPoints <= 0 {
		errs = append(errs, errors.New("config: analytics.trend_points must be positive"))
	}
	if c.Analytics.HistoryDefaultMonths <= 0 || c.Analytics.TrendsDefaultMonths <= 0 {
		errs = append(errs, errors.New("config: analytics default months must be positive"))
	}
	return errors.Join(errs...)
}

// DSN returns the keyword/value connection string used by gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// URL returns the postgres:// connection URL used by pgx and migrations.
func (c *Config) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Database.User, c.Database.Password),
		Host:   c.Database.Host + ":" + c.Database.Port,
		Path:   c.Database.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.Database.SSLMode)
	if c.Database.SearchPath != "" {
		q.Set("search_path", c.Database.SearchPath)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
