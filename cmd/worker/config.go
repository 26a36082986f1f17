package main

import (
	"log"
	"strconv"

	"github.com/spycraft69/GAMA-Product-Request/internal/config"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	Environment   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SMTP          config.SMTPConfig
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	redisDB, err := strconv.Atoi(utils.GetEnvVariable("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}

	cfg := &Config{
		Environment:   utils.GetEnvVariable("APP_ENV", "development"),
		RedisAddr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		RedisPassword: utils.GetEnvVariable("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		SMTP: config.SMTPConfig{
			Host:     utils.GetEnvVariable("SMTP_HOST", ""),
			Port:     utils.GetEnvVariable("SMTP_PORT", "587"),
			User:     utils.GetEnvVariable("SMTP_USER", ""),
			Password: utils.GetEnvVariable("SMTP_PASSWORD", ""),
			From:     utils.GetEnvVariable("SMTP_FROM", ""),
		},
	}

	log.Printf("[Config] Redis: %s, SMTP: %s:%s",
		cfg.RedisAddr, cfg.SMTP.Host, cfg.SMTP.Port)

	return cfg
}
