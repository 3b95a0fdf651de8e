package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vet-clinic/internal/platform/logger"
)

const (
	DefaultPort         = "8080"
	DefaultRefreshDelay = 2500 * time.Millisecond
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

// Config agrupa la configuración del proceso.
type Config struct {
	Port string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	// SeedFixtures carga los datos de ejemplo al construir los repos.
	SeedFixtures bool

	// RefreshDelay es la pausa simulada antes de recalcular el resumen.
	RefreshDelay time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Warnings acumula valores inválidos que se reemplazaron por defaults.
	Warnings []string
}

// Load lee un .env opcional y luego el entorno.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv construye la config desde una función tipo os.Getenv.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Port:         DefaultPort,
		LogLevel:     logger.ParseLevel(getenv("LOG_LEVEL")),
		LogFormat:    logger.ParseFormat(getenv("LOG_FORMAT")),
		AppName:      strings.TrimSpace(getenv("APP_NAME")),
		SeedFixtures: true,
		RefreshDelay: DefaultRefreshDelay,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
	if cfg.AppName == "" {
		cfg.AppName = "vet-clinic"
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			cfg.Warnings = append(cfg.Warnings, "invalid PORT "+strconv.Quote(v)+", using "+DefaultPort)
		} else {
			cfg.Port = v
		}
	}

	if v := strings.TrimSpace(getenv("SEED_FIXTURES")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, "invalid SEED_FIXTURES "+strconv.Quote(v)+", using true")
		} else {
			cfg.SeedFixtures = b
		}
	}

	cfg.RefreshDelay = duration(getenv, "STATS_REFRESH_DELAY", DefaultRefreshDelay, &cfg.Warnings)
	cfg.ReadTimeout = duration(getenv, "HTTP_READ_TIMEOUT", DefaultReadTimeout, &cfg.Warnings)
	cfg.WriteTimeout = duration(getenv, "HTTP_WRITE_TIMEOUT", DefaultWriteTimeout, &cfg.Warnings)

	return cfg
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func duration(getenv func(string) string, key string, def time.Duration, warnings *[]string) time.Duration {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		*warnings = append(*warnings, "invalid "+key+" "+strconv.Quote(v)+", using "+def.String())
		return def
	}
	return d
}
