package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type FlashDealConfig struct {
	Env          string `yaml:"env" env:"FLASHDEAL_ENV" env-default:"local"`
	GRPCServer   `yaml:"grpc_server"`
	HTTPServer   `yaml:"http_server"`
	DealDB       `yaml:"deal_db"`
	Migrations   `yaml:"migrations"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Redis        `yaml:"redis"`
	Tracing      `yaml:"tracing"`
	Sweep        `yaml:"sweep"`
	Claim        `yaml:"claim"`
	Rescue       `yaml:"rescue"`
	Coupon       `yaml:"coupon"`
	Directory    `yaml:"directory"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50061"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8061"`
}

type DealDB struct {
	// "postgres" or "memory"
	Driver      string        `yaml:"driver" env:"DEAL_DB_DRIVER" env-default:"postgres"`
	Dsn         string        `yaml:"dsn" env:"DEAL_DB_DSN"`
	LockTimeout time.Duration `yaml:"lock_timeout" env-default:"3s"`
}

type Migrations struct {
	Enabled bool   `yaml:"enabled" env:"MIGRATIONS_ENABLED" env-default:"true"`
	Path    string `yaml:"path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type KafkaService struct {
	// "kafka" or "log"
	Driver string `yaml:"driver" env:"NOTIFY_DRIVER" env-default:"kafka"`
	Host   string `yaml:"host" env:"KAFKA_HOST" env-default:"localhost"`
	Port   string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	Topic  string `yaml:"topic" env:"KAFKA_NOTIFICATION_TOPIC" env-default:"flashdeal-notifications"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Tracing struct {
	Enabled        bool   `yaml:"enabled" env:"TRACING_ENABLED" env-default:"false"`
	ServiceName    string `yaml:"service_name" env-default:"flashdeal-service"`
	JaegerEndpoint string `yaml:"jaeger_endpoint" env:"JAEGER_ENDPOINT" env-default:"http://localhost:14268/api/traces"`
}

type Sweep struct {
	Interval    time.Duration `yaml:"interval" env-default:"60s"`
	LockTTL     time.Duration `yaml:"lock_ttl" env-default:"60s"`
	LockKey     string        `yaml:"lock_key" env-default:"flashdeal:sweep:lock"`
	ItemTimeout time.Duration `yaml:"item_timeout" env-default:"20s"`
}

type Claim struct {
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	RetryBackoff time.Duration `yaml:"retry_backoff" env-default:"100ms"`
}

type Rescue struct {
	TriggerRatio            float64       `yaml:"trigger_ratio" env-default:"0.8"`
	Window                  time.Duration `yaml:"window" env-default:"5m"`
	DefaultExtensionMinutes int           `yaml:"default_extension_minutes" env-default:"10"`
	DefaultBonusPercent     float64       `yaml:"default_bonus_percent" env-default:"5"`
}

type Coupon struct {
	Prefix      string        `yaml:"prefix" env-default:"FD"`
	Length      int           `yaml:"length" env-default:"8"`
	MaxAttempts int           `yaml:"max_attempts" env-default:"5"`
	Validity    time.Duration `yaml:"validity" env-default:"72h"`
}

type Directory struct {
	CacheSize     int           `yaml:"cache_size" env-default:"1024"`
	CacheTTL      time.Duration `yaml:"cache_ttl" env-default:"5m"`
	AnalyticsZone string        `yaml:"analytics_zone" env-default:"UTC"`
}

// Load reads the YAML config at path and applies environment overrides.
func Load(path string) (*FlashDealConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg FlashDealConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *FlashDealConfig {
	// Processing env config variable and file
	configPath := os.Getenv("FLASHDEAL_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("FLASHDEAL_CONFIG_PATH was not found\n")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	return cfg
}
