package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	// Firestore layouts for user documents.
	LayoutCooperative = "cooperative" // cooperatives/{idCoop}/{type}/{uid}
	LayoutFlat        = "flat"        // users/{uid}
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type FirebaseConfig struct {
	// CredentialsJSON holds the service-account blob read from the
	// environment. CredentialsPath is the file-based fallback; one of the
	// two must be set.
	CredentialsJSON string
	CredentialsPath string

	// Layout selects where user documents live in Firestore.
	Layout string
}

type AppConfig struct {
	Environment string
	ServiceName string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Firebase: FirebaseConfig{
			CredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS"),
			CredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
			Layout:          getEnv("FIRESTORE_LAYOUT", LayoutCooperative),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			ServiceName: getEnv("SERVICE_NAME", "ecuabus-user-api"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.CredentialsJSON == "" && c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS or FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.Firebase.Layout != LayoutCooperative && c.Firebase.Layout != LayoutFlat {
		return fmt.Errorf("FIRESTORE_LAYOUT must be %q or %q", LayoutCooperative, LayoutFlat)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
