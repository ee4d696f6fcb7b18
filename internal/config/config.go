package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port        string
	DatabaseURL string
	// Sources: "live" hits the real endpoints, "fixture" serves
	// deterministic quotes.
	Sources       string
	SourceTimeout time.Duration
	ShfeBaseURL   string
	BotBaseURL    string
	KmeBaseURL    string
	YahooBaseURL  string
	KitcoBaseURL  string
	// Snapshot cache
	CacheBackend  string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Daily save worker
	SaveSchedule string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:           getEnv("ENV", "local"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Sources:       getEnv("SOURCES", "live"),
		SourceTimeout: time.Duration(atoiDef(getEnv("SOURCE_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		ShfeBaseURL:   getEnv("SHFE_BASE_URL", "https://www.shfe.com.cn"),
		BotBaseURL:    getEnv("BOT_BASE_URL", "https://rate.bot.com.tw"),
		KmeBaseURL:    getEnv("KME_BASE_URL", "https://www.kme.com"),
		YahooBaseURL:  getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
		KitcoBaseURL:  getEnv("KITCO_BASE_URL", "https://kdb-gw.prod.kitco.com"),
		CacheBackend:  getEnv("CACHE_BACKEND", "none"),
		CacheTTL:      time.Duration(atoiDef(getEnv("CACHE_TTL_MS", "60000"), 60000)) * time.Millisecond,
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       atoiDef(getEnv("REDIS_DB", "0"), 0),
		SaveSchedule:  getEnv("SAVE_SCHEDULE", "0 10 * * *"),
	}
}
