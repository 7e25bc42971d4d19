package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultAddr       = ":8080"
	defaultDSN        = "openland.db"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultJWTTTL     = "24h"
	defaultUploadDir  = "./uploads"
	defaultStaticBase = "/uploads"
)

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadDir   string
	StaticBase  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("ADDR", defaultAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
		StaticBase:  getEnv("STATIC_BASE", defaultStaticBase),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
