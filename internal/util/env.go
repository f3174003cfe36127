package util

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if one is present.
// A missing file is not an error; real environment variables always win.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
