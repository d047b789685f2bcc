package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read once at startup and injected through fx. Nothing else in the
// codebase reads the environment directly.
type Config struct {
	Port        string
	PostgresURL string

	JWTSecret string
	JWTTTL    time.Duration

	// AIProvider selects the text-completion backend: "openai" or "gemini".
	AIProvider string
	AIAPIKey   string
	AIModel    string
	AITimeout  time.Duration

	// Generation parameters, fixed per deployment.
	AIMaxTokens         int
	AITemperature       float32
	AITopP              float32
	AIRepetitionPenalty float32
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),

		JWTSecret: getenv("JWT_SECRET", "dev-secret"),
		JWTTTL:    getduration("JWT_TTL", time.Hour),

		AIProvider: getenv("AI_PROVIDER", "openai"),
		AIAPIKey:   os.Getenv("AI_API_KEY"),
		AIModel:    os.Getenv("AI_MODEL"),
		AITimeout:  getduration("AI_TIMEOUT", 10*time.Second),

		AIMaxTokens:         getint("AI_MAX_TOKENS", 500),
		AITemperature:       getfloat("AI_TEMPERATURE", 0.7),
		AITopP:              getfloat("AI_TOP_P", 0.9),
		AIRepetitionPenalty: getfloat("AI_REPETITION_PENALTY", 1.1),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float32) float32 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
