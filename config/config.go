package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"property-backoffice/pkg/timezone"

	"github.com/spf13/viper"
)

const (
	PropertyPolicyOptional = "optional"
	PropertyPolicyRequired = "required"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port           string
	Env            string
	Timezone       string
	CORSOrigin     string
	PropertyPolicy string
	LogLevel       string
}

type DBConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	Path         string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret           string
	AccessExpiry     time.Duration
	RefreshExpiry    time.Duration
	RememberMeExpiry time.Duration
}

type RateLimitConfig struct {
	LoginRPS   float64
	LoginBurst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3333")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", timezone.DefaultTimezone)
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("APPOINTMENT_PROPERTY_POLICY", PropertyPolicyOptional)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "backoffice.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	v.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	v.SetDefault("JWT_REMEMBER_ME_EXPIRY", "720h")

	v.SetDefault("LOGIN_RATE_LIMIT_RPS", 1)
	v.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)
}

// LoadConfig reads .env (when present) and the process environment.
// Environment variables win over the file.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(v.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	rememberMeExpiry, err := time.ParseDuration(v.GetString("JWT_REMEMBER_ME_EXPIRY"))
	if err != nil {
		rememberMeExpiry = 30 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			Timezone:       v.GetString("APP_TIMEZONE"),
			CORSOrigin:     v.GetString("CORS_ORIGIN"),
			PropertyPolicy: strings.ToLower(v.GetString("APPOINTMENT_PROPERTY_POLICY")),
			LogLevel:       v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			Path:         v.GetString("DB_PATH"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:           v.GetString("JWT_SECRET"),
			AccessExpiry:     accessExpiry,
			RefreshExpiry:    refreshExpiry,
			RememberMeExpiry: rememberMeExpiry,
		},
		RateLimit: RateLimitConfig{
			LoginRPS:   v.GetFloat64("LOGIN_RATE_LIMIT_RPS"),
			LoginBurst: v.GetInt("LOGIN_RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.App.PropertyPolicy {
	case PropertyPolicyOptional, PropertyPolicyRequired:
	default:
		return fmt.Errorf("invalid APPOINTMENT_PROPERTY_POLICY %q: use %q or %q", c.App.PropertyPolicy, PropertyPolicyOptional, PropertyPolicyRequired)
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: use %q or %q", c.DB.Driver, DriverPostgres, DriverSQLite)
	}

	if !timezone.IsValid(c.App.Timezone) {
		return fmt.Errorf("invalid APP_TIMEZONE %q", c.App.Timezone)
	}

	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	return nil
}

// Location returns the time zone used for date-times sent without an offset.
func (c AppConfig) Location() *time.Location {
	return timezone.Location(c.Timezone)
}
