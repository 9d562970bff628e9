package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr       string
	AssistantBaseURL string
	RequestTimeout   time.Duration
	DoubaoAPIKey     string
	DoubaoAPIURL     string
	DoubaoModel      string
	CatalogPath      string
	DefaultCity      string
}

func LoadConfig() Config {
	// No .env file is fine; system environment wins either way.
	_ = godotenv.Load()

	return Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8000"),
		AssistantBaseURL: getEnv("ASSISTANT_BASE_URL", "http://localhost:8000"),
		RequestTimeout:   getDurationEnv("REQUEST_TIMEOUT_SECONDS", 30) * time.Second,
		DoubaoAPIKey:     getEnv("DOUBAO_API_KEY", ""),
		DoubaoAPIURL:     getEnv("DOUBAO_API_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		DoubaoModel:      getEnv("DOUBAO_MODEL", "ep-20251103145219-hzndr"),
		CatalogPath:      getEnv("CATALOG_PATH", ""),
		DefaultCity:      getEnv("DEFAULT_CITY", "北京"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback int) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(fallback)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return time.Duration(fallback)
	}
	return time.Duration(n)
}
