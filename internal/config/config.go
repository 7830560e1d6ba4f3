package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort         string
	AppEnv          string
	DBPath          string
	JWTSecret       string
	OperatorPINHash string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:         os.Getenv("APP_PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		DBPath:          os.Getenv("DB_PATH"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		OperatorPINHash: os.Getenv("OPERATOR_PIN_HASH"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8090"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "pastelaria.db"
	}

	if cfg.JWTSecret == "" || cfg.OperatorPINHash == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
