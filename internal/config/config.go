// Package config loads process configuration from the environment, with a
// .env file honored when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries need to stand the system up.
type Config struct {
	DataFile   string // path of the JSON data file
	BcryptCost int    // 0 means the bcrypt default
	LogLevel   string // debug, info, warn, error
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment. A missing .env file is
// not an error; explicit environment variables win over .env entries.
func Load() *Config {
	_ = godotenv.Load()

	cost := 0
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cost = n
		}
	}

	return &Config{
		DataFile:   get("DATA_FILE", "campus_data.json"),
		BcryptCost: cost,
		LogLevel:   get("LOG_LEVEL", "info"),
	}
}
