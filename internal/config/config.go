package config

import (
	"log"
	"os"
	"time"
)

// Config holds all runtime configuration. It is built once at startup and
// passed explicitly to the constructors that need it; nothing in the
// application reads environment variables after Load returns.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Credentials for the external movie metadata service. APIToken is the
	// bearer token sent on every request; APIKey is the query-string
	// credential the details endpoint expects.
	APIURL   string
	APIToken string
	APIKey   string

	RedisAddr     string
	RedisPassword string

	// How long a search's candidate list stays retrievable in the session
	// cache before Redis evicts it.
	CandidateTTL time.Duration
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "movievault"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		APIURL:        must("API_URL"),
		APIToken:      must("API_TOKEN"),
		APIKey:        must("API_KEY"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CandidateTTL:  parseDur(getenv("CANDIDATE_TTL", "30m")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// must retrieves a required environment variable and exits when it is unset.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}
