package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Fetchers FetcherConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	MigrationsDir string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// FetcherConfig tunes the external credential collaborators. Each fetcher
// can be disabled independently; a disabled fetcher behaves like a failed
// one (absent signals).
type FetcherConfig struct {
	GithubEnabled   bool
	LeetcodeEnabled bool
	LinkedinEnabled bool
	SignalCacheTTL  time.Duration
	Workers         int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "veridex"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        durationEnv("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(intEnv("DB_POOL_MAX_CONNS", 8)),
		PoolMinConns:          int32(intEnv("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   durationEnv("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   durationEnv("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: durationEnv("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),

		MigrationsDir: opt("DB_MIGRATIONS_DIR", "migrations"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationEnv("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: durationEnv("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.Fetchers = FetcherConfig{
		GithubEnabled:   boolEnv("FETCH_GITHUB_ENABLED", true),
		LeetcodeEnabled: boolEnv("FETCH_LEETCODE_ENABLED", true),
		LinkedinEnabled: boolEnv("FETCH_LINKEDIN_ENABLED", false),
		SignalCacheTTL:  durationEnv("SIGNAL_CACHE_TTL", 6*time.Hour),
		Workers:         intEnv("FETCH_WORKERS", 4),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolEnv(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durationEnv(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
