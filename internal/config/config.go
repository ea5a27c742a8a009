package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/growlog/growlog-api/internal/logger"
)

type Config struct {
	HTTP   HTTPConfig
	DB     DBConfig
	Redis  RedisConfig
	AI     AIConfig
	JWT    JWTConfig
	Logger LoggerConfig
}

type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// RedisConfig configures the weekly stats cache. An empty Addr
// selects the in-memory cache instead.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func Load() (*Config, error) {
	redisDB, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))

	return &Config{
		HTTP: HTTPConfig{
			Port:           getEnvOrDefault("HTTP_PORT", "8080"),
			AllowedOrigins: strings.Split(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173"), ","),
		},
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "growlog"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		AI: AIConfig{
			BaseURL: getEnvOrDefault("AI_BASE_URL", "http://localhost:8000"),
			Timeout: parseDuration(getEnvOrDefault("AI_TIMEOUT", "15s"), 15*time.Second),
		},
		JWT: JWTConfig{
			Secret: getEnvOrDefault("JWT_SECRET", "growlog-secret"),
			TTL:    parseDuration(getEnvOrDefault("JWT_TTL", "168h"), 168*time.Hour),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
