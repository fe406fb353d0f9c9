package config

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env  string `envconfig:"ENV" default:"development" validate:"required,oneof=development stage production"`
	Http Http   `envconfig:"HTTP"`

	Cors CORS `envconfig:"CORS" validate:"required"`

	StorageDriver string   `envconfig:"STORAGE_DRIVER" default:"postgres" validate:"required,oneof=postgres memory"`
	Postgres      Postgres `envconfig:"POSTGRES"`

	JWT JWT `envconfig:"JWT" validate:"required"`

	Gemini Gemini `envconfig:"GEMINI"`

	PackingCache Cache `envconfig:"PACKING_CACHE"`

	Kafka Kafka `envconfig:"KAFKA"`

	Pricing pricing.Config `envconfig:"PRICING"`
}

type Http struct {
	Host         string        `envconfig:"HOST" default:"0.0.0.0" validate:"required,hostname|ip"`
	Port         string        `envconfig:"PORT" default:"5000" validate:"required,numeric"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s" validate:"gte=0"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s" validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000" validate:"required,min=1"`
}

type Postgres struct {
	Host     string `envconfig:"HOST" default:"localhost" validate:"required_if=Enabled true"`
	Port     int    `envconfig:"PORT" default:"5432" validate:"gt=0,lte=65535"`
	DBName   string `envconfig:"DB" default:"shipments"`
	User     string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`

	SSLMode string `envconfig:"SSL_MODE" default:"disable" validate:"oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"gte=1"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m" validate:"gte=0"`
	ConnectAttempts int           `envconfig:"CONNECT_ATTEMPTS" default:"5" validate:"gte=1"`

	Enabled bool `ignored:"true"`
}

type JWT struct {
	Secret string        `envconfig:"SECRET" required:"true" validate:"required,min=16"`
	TTL    time.Duration `envconfig:"TTL" default:"720h" validate:"gt=0"`
}

type Gemini struct {
	APIKey  string        `envconfig:"API_KEY"`
	Model   string        `envconfig:"MODEL" default:"gemini-1.5-flash" validate:"required"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
}

type Cache struct {
	Capacity int           `envconfig:"CAPACITY" default:"512" validate:"gte=1"`
	TTL      time.Duration `envconfig:"TTL" default:"24h" validate:"gt=0"`
}

type Kafka struct {
	Enabled       bool     `envconfig:"ENABLED" default:"false"`
	GroupID       string   `envconfig:"GROUP_ID" default:"shipment-tracker" validate:"required_if=Enabled true"`
	Brokers       []string `envconfig:"BROKERS" default:"localhost:9092" validate:"required_if=Enabled true,dive,hostname_port"`
	EventsTopic   string   `envconfig:"EVENTS_TOPIC" default:"shipment-events" validate:"required_if=Enabled true"`
	TrackingTopic string   `envconfig:"TRACKING_TOPIC" default:"shipment-tracking" validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `envconfig:"READER_MAX_WAIT" default:"10ms" validate:"gte=0"`
	BatchTimeout  time.Duration `envconfig:"BATCH_TIMEOUT" default:"10ms" validate:"gte=0"`
}

// New reads the configuration from the environment on top of the built-in defaults.
func New() (Config, error) {
	conf := Config{Pricing: pricing.DefaultConfig()}
	if err := envconfig.Process("", &conf); err != nil {
		return Config{}, fmt.Errorf("failed to read env: %w", err)
	}
	conf.Postgres.Enabled = conf.StorageDriver == StorageDriverPostgres
	return conf, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := c.Pricing.Validate(); err != nil {
		return fmt.Errorf("invalid pricing: %w", err)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}
