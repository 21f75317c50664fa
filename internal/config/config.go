package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Providers ProvidersConfig
	Cache     CacheConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token issuance parameters. JWTSecret has no
// default: the service must refuse to start without one rather than
// sign tokens with a guessable key.
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
	BcryptCost      int
}

// ProvidersConfig groups the outbound data-provider endpoints.
type ProvidersConfig struct {
	Dart         DartConfig
	Finance      FinanceConfig
	ExchangeRate ExchangeRateConfig
	News         NewsConfig
}

// DartConfig points at the corporate disclosure API.
type DartConfig struct {
	BaseURL  string
	APIKey   string
	MockMode bool
}

// FinanceConfig points at the stock price API.
type FinanceConfig struct {
	BaseURL  string
	APIKey   string
	MockMode bool
}

// ExchangeRateConfig points at the exchange rate API.
type ExchangeRateConfig struct {
	BaseURL  string
	APIKey   string
	MockMode bool
}

// NewsConfig points at the news search API.
type NewsConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	MockMode     bool
}

// CacheConfig sets TTLs for cached provider responses.
type CacheConfig struct {
	RateTTLMinutes int
	NewsTTLMinutes int
}

// Load reads configuration from environment variables, applying defaults
// where possible. A missing JWT secret is a hard error so the process
// fails fast instead of failing open.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "company-research"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:       secret,
			TokenTTLMinutes: getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 120),
			BcryptCost:      getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Providers: ProvidersConfig{
			Dart: DartConfig{
				BaseURL:  getEnv("DART_API_URL", "https://opendart.fss.or.kr/api"),
				APIKey:   os.Getenv("DART_API_KEY"),
				MockMode: getEnvAsBool("DART_MOCK_MODE", true),
			},
			Finance: FinanceConfig{
				BaseURL:  getEnv("FINANCE_API_URL", "https://apis.data.go.kr/1160100/service/GetStockSecuritiesInfoService/getStockPriceInfo"),
				APIKey:   os.Getenv("FINANCE_API_KEY"),
				MockMode: getEnvAsBool("FINANCE_MOCK_MODE", true),
			},
			ExchangeRate: ExchangeRateConfig{
				BaseURL:  getEnv("EXCHANGE_API_URL", "https://oapi.koreaexim.go.kr/site/program/financial/exchangeJSON"),
				APIKey:   os.Getenv("EXCHANGE_API_KEY"),
				MockMode: getEnvAsBool("EXCHANGE_MOCK_MODE", true),
			},
			News: NewsConfig{
				BaseURL:      getEnv("NEWS_API_URL", "https://openapi.naver.com/v1/search/news.json"),
				ClientID:     os.Getenv("NEWS_CLIENT_ID"),
				ClientSecret: os.Getenv("NEWS_CLIENT_SECRET"),
				MockMode:     getEnvAsBool("NEWS_MOCK_MODE", true),
			},
		},
		Cache: CacheConfig{
			RateTTLMinutes: getEnvAsInt("CACHE_RATE_TTL_MINUTES", 60),
			NewsTTLMinutes: getEnvAsInt("CACHE_NEWS_TTL_MINUTES", 10),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TokenTTL returns the configured token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
