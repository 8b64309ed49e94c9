package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenWeatherKey     string
	OpenWeatherBaseURL string
	AnthropicKey       string
	AnthropicModel     string
	Port               string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded (ok for prod)")
	}
	return &Config{
		OpenWeatherKey:     os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		AnthropicKey:       os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:     getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		Port:               getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
