// Package config provides application configuration for the bot binary.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Audit backend selectors.
const (
	AuditBackendFile   = "file"
	AuditBackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Port                string
	KnowledgePath       string
	SimilarityThreshold float64
	DefaultResponse     string
	WelcomeMessage      string
	WelcomeMedia        string
	AuditBackend        string
	AuditPath           string
	AuditDBPath         string
	AllowedUsers        []string
	LogLevel            string
	LogFormat           string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		KnowledgePath:       getEnv("KNOWLEDGE_PATH", "./data/corpus.json"),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.45),
		DefaultResponse:     getEnv("DEFAULT_RESPONSE", ""),
		WelcomeMessage:      getEnv("WELCOME_MESSAGE", ""),
		WelcomeMedia:        getEnv("WELCOME_MEDIA", ""),
		AuditBackend:        getEnv("AUDIT_BACKEND", AuditBackendFile),
		AuditPath:           getEnv("AUDIT_PATH", "./data/audit.ndjson"),
		AuditDBPath:         getEnv("AUDIT_DB_PATH", "./data/audit.db"),
		AllowedUsers:        getEnvList("ALLOWED_USERS"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are consistent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.KnowledgePath == "" {
		return fmt.Errorf("KNOWLEDGE_PATH cannot be empty")
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be in (0,1), got %v", c.SimilarityThreshold)
	}
	switch c.AuditBackend {
	case AuditBackendFile:
		if c.AuditPath == "" {
			return fmt.Errorf("AUDIT_PATH cannot be empty")
		}
	case AuditBackendSQLite:
		if c.AuditDBPath == "" {
			return fmt.Errorf("AUDIT_DB_PATH cannot be empty")
		}
	default:
		return fmt.Errorf("AUDIT_BACKEND must be %q or %q, got %q", AuditBackendFile, AuditBackendSQLite, c.AuditBackend)
	}
	return nil
}

// AllowsAll reports whether the allow-list is disabled.
func (c *Config) AllowsAll() bool { return len(c.AllowedUsers) == 0 }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
