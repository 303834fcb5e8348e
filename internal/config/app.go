package config

import (
	"os"
	"strings"
	"sync"

	"github.com/hemant-mistri/portfolio/internal/logger"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:4173",
	"https://hemant-mistri.vercel.app",
}

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	BaseURL        string
	StaticDir      string
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

// LoadAppConfig reads the application settings once per process.
func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig()
	})
	return appConfig
}

func newAppConfig() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
		logger.Warn().Str("env", env).Msg("APP_ENV not set, using default")
	}
	return &AppConfig{
		Name:           getEnv("APP_NAME", "portfolio"),
		Env:            env,
		Port:           normalizePort(getEnv("APP_PORT", getEnv("PORT", ":4000"))),
		BaseURL:        os.Getenv("APP_URL"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS"), defaultAllowedOrigins),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// normalizePort accepts "4000" as well as ":4000" or "host:4000".
func normalizePort(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(raw string, fallback []string) []string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
