package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

var (
	ErrInvalidRedirectStatus = errors.New("redirect status must be one of 301, 302, 307, 308")
	ErrInvalidStoreDriver    = errors.New("store driver must be one of postgres, sqlite, memory")
	ErrInvalidCacheCapacity  = errors.New("cache capacity must be positive")
	ErrInvalidCreateAttempts = errors.New("max create attempts must be positive")
)

var allowedRedirectStatuses = []int{301, 302, 307, 308}

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Store       StoreConfig
	App         AppConfig
	Cache       CacheConfig
	ReportCache ReportCacheConfig
	Analytics   AnalyticsConfig
	Validation  ValidationConfig
	RateLimit   RateLimitConfig
	Auth        AuthConfig
	Pprof       PprofConfig
	TLS         TLSConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shortlink"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
}

// URL renders the connection settings as a postgres:// URL, the form accepted
// by both pgxpool and the migration driver.
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type StoreConfig struct {
	Driver    string `env:"STORE_DRIVER" envDefault:"postgres"`
	SQLiteURL string `env:"SQLITE_URL" envDefault:"file:shortlink.db"`
}

type AppConfig struct {
	BaseURL           string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	RedirectStatus    int           `env:"REDIRECT_STATUS" envDefault:"302"`
	MaxCreateAttempts int           `env:"MAX_CREATE_ATTEMPTS" envDefault:"10"`
	StoreTimeout      time.Duration `env:"STORE_TIMEOUT" envDefault:"3s"`
	TaskTimeout       time.Duration `env:"CLICK_TASK_TIMEOUT" envDefault:"5s"`
	RecentClicksLimit int           `env:"RECENT_CLICKS_LIMIT" envDefault:"10"`
	QRSize            int           `env:"QR_SIZE" envDefault:"256"`
}

type CacheConfig struct {
	Capacity int           `env:"CACHE_CAPACITY" envDefault:"1000"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

type ReportCacheConfig struct {
	MaxSizePow2 int           `env:"REPORT_CACHE_MAX_SIZE_POW2" envDefault:"20"`
	TTL         time.Duration `env:"REPORT_CACHE_TTL" envDefault:"2s"`
}

type AnalyticsConfig struct {
	BufferSize     int    `env:"ANALYTICS_BUFFER_SIZE" envDefault:"10000"`
	FlushThreshold int    `env:"ANALYTICS_FLUSH_THRESHOLD" envDefault:"500"`
	FlushInterval  int    `env:"ANALYTICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	NATSURL        string `env:"NATS_URL"`
	NATSSubject    string `env:"NATS_SUBJECT" envDefault:"shortlink.clicks"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
	MaxBatchSize       int    `env:"VALIDATION_MAX_BATCH_SIZE" envDefault:"100"`
	AllowPrivateIPs    bool   `env:"VALIDATION_ALLOW_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"VALIDATION_MAX_REQUEST_BODY_SIZE" envDefault:"1M"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(allowedRedirectStatuses, c.App.RedirectStatus) {
		return fmt.Errorf("%w: got %d", ErrInvalidRedirectStatus, c.App.RedirectStatus)
	}
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverMemory:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidStoreDriver, c.Store.Driver)
	}
	if c.Cache.Capacity <= 0 {
		return ErrInvalidCacheCapacity
	}
	if c.App.MaxCreateAttempts <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCreateAttempts, c.App.MaxCreateAttempts)
	}
	return nil
}
