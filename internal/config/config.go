// Load envs from .env
// Provide default values

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	CVDataFile      string
	EmpleosDataFile string
	DatabaseURL     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		CVDataFile:      os.Getenv("CV_DATA_FILE"),
		EmpleosDataFile: os.Getenv("EMPLEOS_DATA_FILE"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.CVDataFile == "" {
		cfg.CVDataFile = "cv_data.json"
	}
	if cfg.EmpleosDataFile == "" {
		cfg.EmpleosDataFile = "empleos_data.json"
	}

	return cfg
}
