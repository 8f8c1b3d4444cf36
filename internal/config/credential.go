package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvCredentialSource resolves an API key fresh on every call.
// A non-empty value in EnvFile wins over the process environment, so
// editing the file rotates the key without a restart.
type EnvCredentialSource struct {
	Key     string
	EnvFile string
}

// NewEnvCredentialSource builds a source for the configured credential variable.
func NewEnvCredentialSource(cfg Config) EnvCredentialSource {
	return EnvCredentialSource{Key: cfg.AI.CredentialEnv, EnvFile: cfg.EnvFile}
}

// Credential returns the current key or "" when none is configured.
func (s EnvCredentialSource) Credential() string {
	if s.EnvFile != "" {
		if vals, err := godotenv.Read(s.EnvFile); err == nil {
			if v := strings.TrimSpace(vals[s.Key]); v != "" {
				return v
			}
		}
	}
	return strings.TrimSpace(os.Getenv(s.Key))
}
