// internal/config/config.go
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Port string
}

type Catalog struct {
	MoviesFile  string
	ReviewsFile string
}

type Redis struct {
	Addr     string // пусто - сессии хранятся в памяти процесса
	Password string
	DB       int
}

type Sessions struct {
	TTL time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Catalog  Catalog
	Redis    Redis
	Sessions Sessions

	// BaselineReviewsDSN - строка подключения к postgres с таблицей
	// baseline_reviews. Пусто - базовые отзывы читаются из ReviewsFile.
	BaselineReviewsDSN string
}

// Load читает конфигурацию из окружения. .env подхватывается, если есть;
// его отсутствие не ошибка.
func Load(logger *slog.Logger) *Config {
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env file")
	}

	cfg := &Config{
		HTTP: HTTPServer{
			Port: getenv("HTTP_PORT", "8080"),
		},
		Catalog: Catalog{
			MoviesFile:  getenv("MOVIES_FILE", "data/movies.json"),
			ReviewsFile: getenv("REVIEWS_FILE", "data/reviews.json"),
		},
		Redis: Redis{
			Addr:     getenv("REDIS_ADDR", ""),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Sessions: Sessions{
			TTL: getenvDuration("SESSION_TTL", 24*time.Hour),
		},
		BaselineReviewsDSN: getenv("BASELINE_REVIEWS_DSN", ""),
	}
	return cfg
}

func getenv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue
	}
	return d
}
