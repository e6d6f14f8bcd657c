package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	AppPort      string
	AppEnv       string
	DataDir      string
	KafkaBrokers []string
	OrdersTopic  string
	StoreWaPhone string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:       os.Getenv("DB_HOST"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       os.Getenv("DB_PORT"),
		AppPort:      os.Getenv("APP_PORT"),
		AppEnv:       os.Getenv("APP_ENV"),
		DataDir:      os.Getenv("DATA_DIR"),
		OrdersTopic:  os.Getenv("ORDERS_TOPIC"),
		StoreWaPhone: os.Getenv("STORE_WA_PHONE"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.OrdersTopic == "" {
		cfg.OrdersTopic = "orders.created"
	}

	if cfg.DBHost == "" {
		log.Println("DB_HOST not set, file store fallback will be used")
	}

	return cfg
}
