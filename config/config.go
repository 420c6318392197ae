package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Firestore FirestoreConfig
	App       AppConfig
	Developer DeveloperConfig
}

type ServerConfig struct {
	Port string
}

type FirestoreConfig struct {
	// CredentialsPath points at a service account key file (local development).
	CredentialsPath string
	// CredentialsJSON holds the raw service account JSON (hosted deployments
	// where mounting a file is not possible).
	CredentialsJSON string
	ProjectID       string
	Collection      string
}

type AppConfig struct {
	Environment string
	Version     string
}

// DeveloperConfig backs the /info endpoint.
type DeveloperConfig struct {
	Name         string
	Registration string
	College      string
	Note         string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Firestore: FirestoreConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "serviceAccountKey.json"),
			CredentialsJSON: getEnv("FIREBASE_CREDENTIALS", ""),
			ProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
			Collection:      getEnv("FIRESTORE_COLLECTION", "projects"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Developer: DeveloperConfig{
			Name:         getEnv("DEV_NAME", "Harjas Partap Singh Romana"),
			Registration: getEnv("DEV_REGISTRATION", "22BSA10120"),
			College:      getEnv("DEV_COLLEGE", "VIT Bhopal University"),
			Note:         getEnv("DEV_NOTE", "This is task 2 - CS Projects API"),
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

	if c.Firestore.Collection == "" {
		return fmt.Errorf("FIRESTORE_COLLECTION is required")
	}

	if c.Firestore.CredentialsPath == "" && c.Firestore.CredentialsJSON == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH or FIREBASE_CREDENTIALS is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
