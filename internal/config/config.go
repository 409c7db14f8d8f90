package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL      string
	TokenFile   string
	OpsPort     string
	HTTPTimeout time.Duration
}

func loadEnv() {
	exePath, err := os.Getwd()
	if err != nil {
		log.Fatal("Error getting working directory:", err)
	}

	possiblePaths := []string{
		filepath.Join(exePath, ".env"),
		filepath.Join(exePath, "..", ".env"),
		filepath.Join(exePath, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}

	log.Println("No .env file found, using process environment")
}

func Load() Config {
	loadEnv()

	cfg := Config{
		APIURL:      getEnv("API_URL", "http://localhost:4000"),
		TokenFile:   getEnv("TOKEN_FILE", defaultTokenFile()),
		OpsPort:     getEnv("OPS_PORT", "9100"),
		HTTPTimeout: 10 * time.Second,
	}

	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "authToken.json"
	}
	return filepath.Join(home, ".delivery-client", "authToken.json")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
