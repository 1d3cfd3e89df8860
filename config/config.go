package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	VendorModeHTTP   = "http"
	VendorModeStatic = "static"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Vendor   VendorConfig
	Sync     SyncConfig
	RabbitMQ RabbitMQConfig
	JWT      JWTConfig
}

type AppConfig struct {
	Port       string
	Env        string
	Timezone   string
	LogLevel   string
	CORSOrigin string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type VendorConfig struct {
	Mode       string
	BaseURL    string
	Username   string
	Password   string
	Timeout    time.Duration
	MaxRetries int
}

type SyncConfig struct {
	CronSpec     string
	Concurrency  int
	RunOnStartup bool
	QuietWeekday time.Weekday
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
	Queue   string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	vendorTimeout, err := time.ParseDuration(viper.GetString("VENDOR_TIMEOUT"))
	if err != nil {
		vendorTimeout = 10 * time.Second
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	quietWeekday, err := ParseWeekday(viper.GetString("SYNC_QUIET_WEEKDAY"))
	if err != nil {
		return nil, err
	}

	vendorMode := strings.ToLower(viper.GetString("VENDOR_MODE"))
	if vendorMode != VendorModeHTTP && vendorMode != VendorModeStatic {
		return nil, fmt.Errorf("unsupported VENDOR_MODE %q", vendorMode)
	}

	concurrency := viper.GetInt("SYNC_CONCURRENCY")
	if concurrency < 1 {
		concurrency = 1
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			Timezone:   viper.GetString("APP_TIMEZONE"),
			LogLevel:   viper.GetString("LOG_LEVEL"),
			CORSOrigin: viper.GetString("APP_CORS_ORIGIN"),
		},
		DB: DBConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Vendor: VendorConfig{
			Mode:       vendorMode,
			BaseURL:    strings.TrimRight(viper.GetString("VENDOR_BASE_URL"), "/"),
			Username:   viper.GetString("VENDOR_USERNAME"),
			Password:   viper.GetString("VENDOR_PASSWORD"),
			Timeout:    vendorTimeout,
			MaxRetries: viper.GetInt("VENDOR_MAX_RETRIES"),
		},
		Sync: SyncConfig{
			CronSpec:     viper.GetString("SYNC_CRON_SPEC"),
			Concurrency:  concurrency,
			RunOnStartup: viper.GetBool("SYNC_RUN_ON_STARTUP"),
			QuietWeekday: quietWeekday,
		},
		RabbitMQ: RabbitMQConfig{
			Enabled: viper.GetBool("RABBITMQ_ENABLED"),
			URL:     viper.GetString("RABBITMQ_URL"),
			Queue:   viper.GetString("RABBITMQ_QUEUE"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("APP_TIMEZONE", "UTC")
	viper.SetDefault("APP_CORS_ORIGIN", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("VENDOR_MODE", VendorModeHTTP)
	viper.SetDefault("VENDOR_BASE_URL", "http://localhost:2137/api/doctors")
	viper.SetDefault("VENDOR_USERNAME", "docplanner")
	viper.SetDefault("VENDOR_PASSWORD", "docplanner")
	viper.SetDefault("VENDOR_TIMEOUT", "10s")
	viper.SetDefault("VENDOR_MAX_RETRIES", 3)
	viper.SetDefault("SYNC_CRON_SPEC", "@every 5m")
	viper.SetDefault("SYNC_CONCURRENCY", 1)
	viper.SetDefault("SYNC_RUN_ON_STARTUP", true)
	viper.SetDefault("SYNC_QUIET_WEEKDAY", time.Sunday.String())
	viper.SetDefault("RABBITMQ_QUEUE", "doctor_slot_sync.failures")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
}

// ParseWeekday accepts an English weekday name or its three letter abbreviation, case-insensitively
func ParseWeekday(value string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for day := time.Sunday; day <= time.Saturday; day++ {
		full := strings.ToLower(day.String())
		if name == full || name == full[:3] {
			return day, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", value)
}

// Location resolves the timezone naive vendor timestamps are read in
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
