// README: Config loader with env defaults for HTTP, AI, audit DB, CORS and logging settings.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AIConfig struct {
	// CredentialEnv names the variable holding the Gemini API key.
	CredentialEnv string
	// FallbackModel answers when the catalog cannot pick a flash model.
	FallbackModel string
}

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
		CORSOrigins     []string
	}
	DB struct {
		// DSN enables the generation audit log when non-empty.
		DSN string
	}
	Log struct {
		Development bool
	}
	GinMode string
	EnvFile string
	AI      AIConfig
}

// Load reads the optional env file into the process environment (existing
// variables win) and then resolves every setting from the environment.
func Load() (Config, error) {
	envFile := envOrDefault("TRIP_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	var cfg Config
	cfg.EnvFile = envFile
	cfg.HTTP.Addr = envOrDefault("TRIP_HTTP_ADDR", ":8000")
	cfg.HTTP.ShutdownTimeout = time.Duration(envOrDefaultInt("TRIP_SHUTDOWN_SECONDS", 10)) * time.Second
	cfg.HTTP.CORSOrigins = envList("TRIP_CORS_ORIGINS", []string{"*"})
	cfg.DB.DSN = os.Getenv("TRIP_DB_DSN")
	cfg.Log.Development = envOrDefaultBool("TRIP_LOG_DEV", false)
	cfg.GinMode = os.Getenv("GIN_MODE")
	cfg.AI.CredentialEnv = envOrDefault("TRIP_CREDENTIAL_ENV", "GEMINI_API_KEY")
	cfg.AI.FallbackModel = envOrDefault("TRIP_FALLBACK_MODEL", "models/gemini-1.5-flash")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
