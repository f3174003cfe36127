package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rtlite/movieworld/internal/util"
)

type Config struct {
	Addr        string
	DatabaseDSN string
	CacheURL    string
	MQURL       string

	NewsAPIURL string
	NewsAPIKey string

	StaticDir string
}

type ClientConfig struct {
	APIBaseURL     string
	StorePath      string
	RequestTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	return &Config{
		Addr:        util.GetEnvOrDefault("ADDR", ":3000"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		CacheURL:    os.Getenv("CACHE_URL"),
		MQURL:       os.Getenv("RABBIT_MQ_URL"),
		NewsAPIURL:  util.GetEnvOrDefault("NEWS_API_URL", "https://newsapi.org/v2/top-headlines?language=en&pageSize=6"),
		NewsAPIKey:  os.Getenv("NEWS_API_KEY"),
		StaticDir:   os.Getenv("STATIC_DIR"),
	}, nil
}

func LoadClientConfig() (*ClientConfig, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	timeoutMs := 7000
	if v := os.Getenv("REQUEST_TIMEOUT_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutMs = parsed
		}
	}
	return &ClientConfig{
		APIBaseURL:     util.GetEnvOrDefault("API_BASE_URL", "http://localhost:3000"),
		StorePath:      util.GetEnvOrDefault("CLIENT_STORE_PATH", "movieworld.db"),
		RequestTimeout: time.Duration(timeoutMs) * time.Millisecond,
	}, nil
}
