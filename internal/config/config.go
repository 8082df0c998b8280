package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Search    SearchConfig    `yaml:"search"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Contact   ContactConfig   `yaml:"contact"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Admin     AdminConfig     `yaml:"admin"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port                   string   `yaml:"port"`
	CORSOrigins            []string `yaml:"cors_origins"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
}

// DatabaseConfig selects and configures the property store
type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	Seed     bool           `yaml:"seed"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// SearchConfig contains search engine settings
type SearchConfig struct {
	Meilisearch MeilisearchConfig `yaml:"meilisearch"`
}

// MeilisearchConfig contains Meilisearch connection settings
type MeilisearchConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	APIKey  string `yaml:"api_key"`
	Index   string `yaml:"index"`
}

// RateLimitConfig limits contact submissions per client
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour"`
	RequestsPerDay    int  `yaml:"requests_per_day"`
}

// ContactConfig contains contact dispatcher settings
type ContactConfig struct {
	QueueSize         int `yaml:"queue_size"`
	Workers           int `yaml:"workers"`
	MaxRetries        int `yaml:"max_retries"`
	RetryDelaySeconds int `yaml:"retry_delay_seconds"`
}

// SchedulerConfig contains background job settings
type SchedulerConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DailyRunTime string `yaml:"daily_run_time"`
	HistoryLimit int    `yaml:"history_limit"`
}

// AdminConfig toggles the admin routes
type AdminConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `yaml:"level"`
	LogRequests bool   `yaml:"log_requests"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   "8084",
			CORSOrigins:            []string{"http://localhost:5173"},
			ShutdownTimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Type: "memory",
			Seed: true,
			MySQL: MySQLConfig{
				Host:     "mysql",
				Port:     3306,
				User:     "realestate_user",
				Password: "realestate_pass",
				Database: "realestate_db",
			},
			Postgres: PostgresConfig{
				Host:     "db",
				Port:     5432,
				User:     "realestate_user",
				Password: "realestate_pass",
				Database: "realestate_db",
				SSLMode:  "disable",
			},
		},
		Search: SearchConfig{
			Meilisearch: MeilisearchConfig{
				Enabled: false,
				Host:    "http://meilisearch:7700",
				Index:   "properties",
			},
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 5,
			RequestsPerHour:   30,
			RequestsPerDay:    100,
		},
		Contact: ContactConfig{
			QueueSize:         100,
			Workers:           1,
			MaxRetries:        3,
			RetryDelaySeconds: 2,
		},
		Scheduler: SchedulerConfig{
			Enabled:      false,
			DailyRunTime: "02:00",
			HistoryLimit: 30,
		},
		Admin: AdminConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:       "info",
			LogRequests: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Type {
	case "memory", "mysql", "postgres":
	default:
		return fmt.Errorf("unknown database type %q", c.Database.Type)
	}
	if c.Contact.QueueSize <= 0 {
		return fmt.Errorf("contact.queue_size must be positive, got %d", c.Contact.QueueSize)
	}
	if c.Contact.Workers <= 0 {
		return fmt.Errorf("contact.workers must be positive, got %d", c.Contact.Workers)
	}
	if c.Scheduler.HistoryLimit <= 0 {
		return fmt.Errorf("scheduler.history_limit must be positive, got %d", c.Scheduler.HistoryLimit)
	}
	return nil
}

// ApplyEnv overrides file settings with environment variables, the way the
// deployment's compose files pass connection details.
func (c *Config) ApplyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = splitList(origins)
	}

	c.Database.Type = getEnv("DB_TYPE", c.Database.Type)
	switch c.Database.Type {
	case "mysql":
		m := &c.Database.MySQL
		m.Host = getEnv("DB_HOST", m.Host)
		m.Port = getEnvInt("DB_PORT", m.Port)
		m.User = getEnv("DB_USER", m.User)
		m.Password = getEnv("DB_PASSWORD", m.Password)
		m.Database = getEnv("DB_NAME", m.Database)
	case "postgres":
		p := &c.Database.Postgres
		p.Host = getEnv("DB_HOST", p.Host)
		p.Port = getEnvInt("DB_PORT", p.Port)
		p.User = getEnv("DB_USER", p.User)
		p.Password = getEnv("DB_PASSWORD", p.Password)
		p.Database = getEnv("DB_NAME", p.Database)
		p.SSLMode = getEnv("DB_SSLMODE", p.SSLMode)
	}

	ms := &c.Search.Meilisearch
	ms.Host = getEnv("MEILISEARCH_HOST", ms.Host)
	ms.APIKey = getEnv("MEILISEARCH_KEY", ms.APIKey)

	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
}

// ShutdownTimeout returns the graceful shutdown window as a duration
func (c *ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// RetryDelay returns the contact retry delay as a duration
func (c *ContactConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
