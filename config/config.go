package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env if present. Deployments set real environment
// variables, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}
