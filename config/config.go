package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Gateway      GatewayConfig
	Redis        RedisConfig
	PageState    PageStateConfig
	Appointments AppointmentsConfig
	Billing      BillingConfig
	Log          LogConfig
	Metrics      MetricsConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type PageStateConfig struct {
	TTL time.Duration
}

type AppointmentsConfig struct {
	// DefaultDoctorID scopes the appointment list shown on page load.
	DefaultDoctorID string
}

type BillingConfig struct {
	CurrencySymbol string
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Namespace string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8081")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("GATEWAY_BASE_URL", "http://localhost:8080")
	v.SetDefault("GATEWAY_TIMEOUT", "10s")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PAGE_STATE_TTL", "30m")
	v.SetDefault("APPOINTMENTS_DEFAULT_DOCTOR_ID", "1")
	v.SetDefault("CURRENCY_SYMBOL", "₹")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_NAMESPACE", "portal")
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	gatewayTimeout, err := time.ParseDuration(v.GetString("GATEWAY_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_TIMEOUT: %w", err)
	}

	pageStateTTL, err := time.ParseDuration(v.GetString("PAGE_STATE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAGE_STATE_TTL: %w", err)
	}
	if pageStateTTL <= 0 {
		return nil, errors.New("PAGE_STATE_TTL must be positive")
	}

	baseURL := strings.TrimRight(v.GetString("GATEWAY_BASE_URL"), "/")
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid GATEWAY_BASE_URL %q", baseURL)
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Gateway: GatewayConfig{
			BaseURL: baseURL,
			Timeout: gatewayTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		PageState: PageStateConfig{
			TTL: pageStateTTL,
		},
		Appointments: AppointmentsConfig{
			DefaultDoctorID: v.GetString("APPOINTMENTS_DEFAULT_DOCTOR_ID"),
		},
		Billing: BillingConfig{
			CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Metrics: MetricsConfig{
			Namespace: v.GetString("METRICS_NAMESPACE"),
		},
	}

	return config, nil
}
