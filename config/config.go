package config

import (
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	AmazonDomain string
	SearchQuery  string
	MaxListings  int

	MaxConcurrency int
	RateLimitMs    int
	MaxRetries     int

	CSVOutputPath string
	ChromeBin     string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		AmazonDomain: getEnv("AMAZON_DOMAIN", "www.amazon.com"),
		SearchQuery:  getEnv("SEARCH_QUERY", "wireless mouse"),
		MaxListings:  getEnvInt("MAX_LISTINGS", 20),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitMs:    getEnvInt("RATE_LIMIT_MS", 2000),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/raw_products.csv"),
		ChromeBin:     getEnv("CHROME_BIN", ""),
	}
}

// SearchURL returns the search-results page URL for the configured query.
func (c *Config) SearchURL() string {
	return "https://" + c.AmazonDomain + "/s?k=" + url.QueryEscape(c.SearchQuery)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
