package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile      string
	AdminUsername string
	AdminPassword string
	LogLevel      string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using defaults")
	}

	return Config{
		DataFile:      getenv("DATA_FILE", "quickcart_data.json"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
