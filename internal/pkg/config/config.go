package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		OrphanDriversInterval    time.Duration
		OrphanDriversGrace       time.Duration
		PaymentReconcileInterval time.Duration
		PaymentReconcileBatch    int
		PaymentReconcileGrace    time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // емкость корзины rate limiter
		RateLimiterBurst int           // скорость пополнения, токенов в секунду
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		Migrate  bool
	}

	Gateways struct {
		OrderServiceURL      string
		RestaurantServiceURL string
		RemoteCallTimeout    time.Duration
	}

	Delivery struct {
		DefaultCity  string
		StoreTimeout time.Duration
	}

	Log struct {
		Level    string
		Encoding string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Gateways Gateways
		Delivery Delivery
		Log      Log
	}
)

// Значения по умолчанию для необязательных переменных окружения.
const (
	defaultPort                 = "3005"
	defaultOrderServiceURL      = "http://localhost:3003"
	defaultRestaurantServiceURL = "http://localhost:3002"
	defaultCity                 = "Mumbai"
	defaultRemoteCallTimeout    = 3 * time.Second
	defaultStoreTimeout         = 5 * time.Second
	defaultRequestTimeout       = 15 * time.Second
	defaultRateLimitQPS         = 100
	defaultRateLimitBurst       = 100
	defaultLogLevel             = "info"
	defaultLogEncoding          = "json"
	defaultSSLMode              = "disable"
	defaultOrphanInterval       = time.Minute
	defaultOrphanGrace          = 5 * time.Minute
	defaultReconcileInterval    = time.Minute
	defaultReconcileBatch       = 50
	defaultReconcileGrace       = time.Minute
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", defaultRateLimitQPS)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", defaultRateLimitBurst)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrate, err := osGetBool("POSTGRES_MIGRATE", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	remoteCallTimeout, err := osGetEnvDuration("REMOTE_CALL_TIMEOUT", defaultRemoteCallTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	storeTimeout, err := osGetEnvDuration("STORE_TIMEOUT", defaultStoreTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orphanInterval, err := osGetEnvDuration("BACKGROUND_ORPHAN_DRIVERS_INTERVAL", defaultOrphanInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orphanGrace, err := osGetEnvDuration("BACKGROUND_ORPHAN_DRIVERS_GRACE", defaultOrphanGrace)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_INTERVAL", defaultReconcileInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileBatch, err := osGetInt("BACKGROUND_PAYMENT_RECONCILE_BATCH", defaultReconcileBatch)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileGrace, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_GRACE", defaultReconcileGrace)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrphanDriversInterval:    orphanInterval,
			OrphanDriversGrace:       orphanGrace,
			PaymentReconcileInterval: reconcileInterval,
			PaymentReconcileBatch:    reconcileBatch,
			PaymentReconcileGrace:    reconcileGrace,
		},
		Server: HTTPServer{
			Port:             osGetString("PORT", defaultPort),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  osGetString("POSTGRES_SSLMODE", defaultSSLMode),
			Migrate:  migrate,
		},
		Gateways: Gateways{
			OrderServiceURL:      osGetString("ORDER_SERVICE_URL", defaultOrderServiceURL),
			RestaurantServiceURL: osGetString("RESTAURANT_SERVICE_URL", defaultRestaurantServiceURL),
			RemoteCallTimeout:    remoteCallTimeout,
		},
		Delivery: Delivery{
			DefaultCity:  osGetString("DEFAULT_CITY", defaultCity),
			StoreTimeout: storeTimeout,
		},
		Log: Log{
			Level:    strings.ToLower(osGetString("LOG_LEVEL", defaultLogLevel)),
			Encoding: osGetString("LOG_ENCODING", defaultLogEncoding),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port %q (set via PORT env variable or --port flag)", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}

	if err := validateURL("ORDER_SERVICE_URL", cfg.Gateways.OrderServiceURL); err != nil {
		return err
	}
	if err := validateURL("RESTAURANT_SERVICE_URL", cfg.Gateways.RestaurantServiceURL); err != nil {
		return err
	}
	if cfg.Gateways.RemoteCallTimeout <= 0 {
		return errors.New("REMOTE_CALL_TIMEOUT must be positive")
	}

	if strings.TrimSpace(cfg.Delivery.DefaultCity) == "" {
		return errors.New("DEFAULT_CITY must not be blank")
	}
	if cfg.Delivery.StoreTimeout <= 0 {
		return errors.New("STORE_TIMEOUT must be positive")
	}

	if cfg.Tasks.OrphanDriversInterval <= 0 {
		return errors.New("BACKGROUND_ORPHAN_DRIVERS_INTERVAL must be positive")
	}
	if cfg.Tasks.OrphanDriversGrace <= 0 {
		return errors.New("BACKGROUND_ORPHAN_DRIVERS_GRACE must be positive")
	}
	if cfg.Tasks.PaymentReconcileInterval <= 0 {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_INTERVAL must be positive")
	}
	if cfg.Tasks.PaymentReconcileBatch <= 0 {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_BATCH must be positive")
	}
	// Свежие DELIVERED досинхронизирует сам UpdateDeliveryStatus в пределах REMOTE_CALL_TIMEOUT.
	if cfg.Tasks.PaymentReconcileGrace <= cfg.Gateways.RemoteCallTimeout {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_GRACE must exceed REMOTE_CALL_TIMEOUT")
	}

	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}

func osGetString(s, def string) string {
	val := strings.TrimSpace(os.Getenv(s))
	if val == "" {
		return def
	}
	return val
}

func osGetInt(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
