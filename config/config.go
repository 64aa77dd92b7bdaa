package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	// DefaultSeason используется, когда клиент не указал сезон.
	DefaultSeason int
	// AdminRole - значение claim "role", дающее расширенные права.
	AdminRole           string
	CORSAllowedOrigins  []string
	SubmitRatePerMinute int
	AutoMigrate         bool
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intFromEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	season, err := intFromEnv("DEFAULT_SEASON", 2025)
	if err != nil {
		return nil, err
	}

	rate, err := intFromEnv("SUBMIT_RATE_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}

	autoMigrate := false
	if raw := os.Getenv("AUTO_MIGRATE"); raw != "" {
		autoMigrate, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTO_MIGRATE environment variable: %w", err)
		}
	}

	adminRole := os.Getenv("ADMIN_ROLE")
	if adminRole == "" {
		adminRole = "admin"
	}

	cfg := &Config{
		DatabaseURL:         dbURL,
		JWTSecretKey:        jwtKey,
		ServerPort:          port,
		DefaultSeason:       season,
		AdminRole:           adminRole,
		CORSAllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SubmitRatePerMinute: rate,
		AutoMigrate:         autoMigrate,
	}

	return cfg, nil
}

func intFromEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
