package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	SessionTTL time.Duration

	// Identity provider (session_id -> profile + session_token exchange)
	IdentityURL string

	// LLM provider (OpenAI-compatible chat completions)
	LLMAPIKey string
	LLMAPIURL string
	LLMModel  string
	AITimeout time.Duration

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "finmitra_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionTTL: parseDuration(getEnv("SESSION_TTL", "168h"), 168*time.Hour),

		IdentityURL: getEnv("IDENTITY_URL", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),

		LLMAPIKey: getEnv("LLM_API_KEY", ""),
		LLMAPIURL: getEnv("LLM_API_URL", "https://api.openai.com/v1/chat/completions"),
		LLMModel:  getEnv("LLM_MODEL", "gpt-4o-mini"),
		AITimeout: parseDuration(getEnv("AI_TIMEOUT", "60s"), 60*time.Second),

		Port:        getEnv("PORT", "8080"),
		// Wildcard is not allowed together with credentials, so the
		// default names the local frontend.
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
