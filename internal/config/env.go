package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr            string
	GinMode            string
	GraphQLEndpoint    string
	GraphQLToken       string
	JWTSecret          string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	JournalDSN         string
}

// LoadEnv reads .env when present, then the process environment. Variables
// already set in the process win over the file.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := getenv("APP_ADDR", ":8080")

	return Env{
		AppAddr:            appAddr,
		GinMode:            getenv("GIN_MODE", ""),
		GraphQLEndpoint:    getenv("GRAPHQL_ENDPOINT", "http://localhost:4000/graphql"),
		GraphQLToken:       getenv("GRAPHQL_TOKEN", ""),
		JWTSecret:          getenv("JWT_SECRET", ""),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "text"),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		JournalDSN:         getenv("JOURNAL_DSN", ""),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
