package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DataDir     string
	CORSOrigins string

	// DedupeProjectRevenue switches the industry analytics rollup to count
	// each project's dollar amount once instead of once per billing row.
	// Off by default to keep historical report numbers reproducible.
	DedupeProjectRevenue bool
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:                 GetEnv("PORT", "3000"),
		Env:                  GetEnv("ENV", "development"),
		DataDir:              GetEnv("DATA_DIR", "./data"),
		CORSOrigins:          GetEnv("CORS_ORIGINS", "*"),
		DedupeProjectRevenue: GetEnv("ANALYTICS_DEDUPE_REVENUE", "false") == "true",
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
