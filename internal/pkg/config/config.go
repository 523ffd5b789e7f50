package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB credentials)
// - default: Values common across all environments (timezone, timeouts, store driver)
// -----------------------------------------------------------------------------

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Shop   ShopConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type StoreConfig struct {
	// memory keeps timers for the process lifetime; postgres persists them.
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER"`
	Password       string        `envconfig:"DB_PASSWORD"`
	DBName         string        `envconfig:"DB_NAME" default:"countdown"`
	SSLMode        string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone       string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns       int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

// Storefront widgets are served from arbitrary shop domains, so the default allows any origin.
type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Shop-Domain"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type ShopConfig struct {
	Default string `envconfig:"DEFAULT_SHOP" default:"demo-store"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if cfg.DB.User == "" || cfg.DB.Password == "" {
			return Config{}, fmt.Errorf("STORE_DRIVER=%s requires DB_USER and DB_PASSWORD", cfg.Store.Driver)
		}
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			TimeZone:       "UTC",
			MaxConns:       5,
			ConnectTimeout: 10 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Shop-Domain"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Shop: ShopConfig{
			Default: "demo-store",
		},
	}
}
