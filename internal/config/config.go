package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Capture   CaptureConfig   `yaml:"capture"   validate:"required"`
	Live      LiveConfig      `yaml:"live"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"rental"       validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SchedulerConfig drives the stalled-booking reconciler and the capture sweeper.
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// StorageConfig describes the primary evidence bucket and the fallback tried after it.
type StorageConfig struct {
	Region          string        `yaml:"region"           env:"STORAGE_REGION"           env-default:"us-east-1" validate:"required"`
	Endpoint        string        `yaml:"endpoint"         env:"STORAGE_ENDPOINT"         env-default:""`
	PathStyle       bool          `yaml:"path_style"       env:"STORAGE_PATH_STYLE"       env-default:"false"`
	PresignExpiry   time.Duration `yaml:"presign_expiry"   env:"STORAGE_PRESIGN_EXPIRY"   env-default:"5m"        validate:"gt=0"`
	Bucket          string        `yaml:"bucket"           env:"STORAGE_BUCKET"           env-default:"booking-images" validate:"required"`
	PublicURL       string        `yaml:"public_url"       env:"STORAGE_PUBLIC_URL"       validate:"required,url"`
	FallbackBucket  string        `yaml:"fallback_bucket"  env:"STORAGE_FALLBACK_BUCKET"  env-default:"images"`
	FallbackBaseURL string        `yaml:"fallback_url"     env:"STORAGE_FALLBACK_URL"     validate:"omitempty,url"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"rental.bookings"`
}

type AuthConfig struct {
	Secret string `yaml:"secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
	Issuer string `yaml:"issuer" env:"AUTH_JWT_ISSUER" env-default:""`
}

type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLE_RATIO"           env-default:"1"  validate:"gte=0,lte=1"`
}

// CaptureConfig controls where pending photos are spooled and how long an untouched
// working set survives.
type CaptureConfig struct {
	SpoolDir string        `yaml:"spool_dir" env:"CAPTURE_SPOOL_DIR" env-default:"/tmp/rental-captures" validate:"required"`
	TTL      time.Duration `yaml:"ttl"       env:"CAPTURE_TTL"       env-default:"2h"                   validate:"gt=0"`
}

type LiveConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"LIVE_ALLOWED_ORIGINS" env-separator:","`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
