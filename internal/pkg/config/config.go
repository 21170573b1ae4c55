package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		WaitingSweepInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
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
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		OrderStatusTopic   string
		NotificationsTopic string
		ConsumerGroup      string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	// Settings are the marketplace policy values. Defaults match the
	// production configuration for the Abidjan launch.
	Settings struct {
		WaitingTimeoutMinutes int64
		WaitingFreeMinutes    int64
		WaitingFeePerMinute   int64
		CourierCommission     int64
		MinimumWalletBalance  int64
		MaxActiveDeliveries   int64
		CommissionRatePercent int64
		WalletCurrency        string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
		Settings Settings
	}
)

const (
	defaultWaitingTimeoutMinutes = 10
	defaultWaitingFreeMinutes    = 2
	defaultWaitingFeePerMinute   = 100
	defaultCourierCommission     = 200
	defaultMaxActiveDeliveries   = 5
	defaultCommissionRatePercent = 15
	defaultWalletCurrency        = "XOF"
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
	sweepInterval, err := osGetEnvDuration("BACKGROUND_WAITING_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			WaitingSweepInterval: sweepInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
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
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			OrderStatusTopic:   os.Getenv("KAFKA_ORDER_STATUS_TOPIC"),
			NotificationsTopic: os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
		Settings: settings,
	}, nil
}

func loadSettings() (Settings, error) {
	timeoutMinutes, err := osGetInt64Default("WAITING_TIMEOUT_MINUTES", defaultWaitingTimeoutMinutes)
	if err != nil {
		return Settings{}, err
	}
	freeMinutes, err := osGetInt64Default("WAITING_FREE_MINUTES", defaultWaitingFreeMinutes)
	if err != nil {
		return Settings{}, err
	}
	feePerMinute, err := osGetInt64Default("WAITING_FEE_PER_MINUTE", defaultWaitingFeePerMinute)
	if err != nil {
		return Settings{}, err
	}
	commission, err := osGetInt64Default("COURIER_COMMISSION_AMOUNT", defaultCourierCommission)
	if err != nil {
		return Settings{}, err
	}
	minimumBalance, err := osGetInt64Default("MINIMUM_WALLET_BALANCE", 0)
	if err != nil {
		return Settings{}, err
	}
	maxActive, err := osGetInt64Default("MAX_ACTIVE_DELIVERIES", defaultMaxActiveDeliveries)
	if err != nil {
		return Settings{}, err
	}
	commissionRate, err := osGetInt64Default("COMMISSION_RATE_PERCENT", defaultCommissionRatePercent)
	if err != nil {
		return Settings{}, err
	}

	currency := os.Getenv("WALLET_CURRENCY")
	if currency == "" {
		currency = defaultWalletCurrency
	}

	return Settings{
		WaitingTimeoutMinutes: timeoutMinutes,
		WaitingFreeMinutes:    freeMinutes,
		WaitingFeePerMinute:   feePerMinute,
		CourierCommission:     commission,
		MinimumWalletBalance:  minimumBalance,
		MaxActiveDeliveries:   maxActive,
		CommissionRatePercent: commissionRate,
		WalletCurrency:        currency,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
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
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.WaitingSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_WAITING_SWEEP_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.OrderStatusTopic == "" {
		return errors.New("KAFKA_ORDER_STATUS_TOPIC is required")
	}
	if cfg.Kafka.NotificationsTopic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	if cfg.Settings.WaitingTimeoutMinutes <= cfg.Settings.WaitingFreeMinutes {
		return errors.New("WAITING_TIMEOUT_MINUTES must exceed WAITING_FREE_MINUTES")
	}
	if cfg.Settings.MaxActiveDeliveries <= 0 {
		return errors.New("MAX_ACTIVE_DELIVERIES must be positive")
	}
	if cfg.Settings.CommissionRatePercent < 0 || cfg.Settings.CommissionRatePercent > 100 {
		return errors.New("COMMISSION_RATE_PERCENT must be within [0, 100]")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64Default(s string, def int64) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
