package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// DataDir is where per-user word files live
	DataDir string

	// Language is the UI language, "en" or "de"
	Language string

	// LocalesPath optionally overrides the embedded translation catalog
	LocalesPath string

	// History database settings. Type is sqlite (default), postgres or
	// mysql; URL is used for the latter two.
	DatabaseType string
	DatabasePath string
	DatabaseURL  string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first when
// present.
func Load() *Config {
	// Missing .env is fine
	_ = godotenv.Load()

	return &Config{
		DataDir:      getEnv("SPELLTRAINER_DATA_DIR", "data"),
		Language:     getEnv("SPELLTRAINER_LANGUAGE", "en"),
		LocalesPath:  getEnv("SPELLTRAINER_I18N_FILE", ""),
		DatabaseType: getEnv("SPELLTRAINER_DB_TYPE", "sqlite"),
		DatabasePath: getEnv("SPELLTRAINER_DB_PATH", "spelltrainer.db"),
		DatabaseURL:  getEnv("SPELLTRAINER_DB_URL", ""),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
