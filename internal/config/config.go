package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	StorePath    string
	StoreBackend string
	LogLevel     string
	LogFormat    string
	LogFile      string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; variables already set win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StorePath:    getEnv("UNITREGISTRY_STORE", "units.cbor"),
		StoreBackend: getEnv("UNITREGISTRY_BACKEND", "file"),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		LogFile:      getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
