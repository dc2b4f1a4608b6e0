package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"   validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Storage   StorageConfig   `yaml:"storage"    validate:"required"`
	Catalog   CatalogConfig   `yaml:"catalog"    validate:"required"`
	RateLimit RateLimitConfig `yaml:"rate_limit" validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Telegram  TelegramConfig  `yaml:"telegram"`
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
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"dzemat"    validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"       env-default:"localhost:6379"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"   env-default:""`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"      validate:"min=0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"graves"`
}

// StorageConfig выбирает хранилище резерваций. Члены джемата всегда живут в Postgres.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres redis"`
}

type CatalogConfig struct {
	Letters      int `yaml:"letters"        env:"CATALOG_LETTERS"        env-default:"26"  validate:"required,min=1,max=26"`
	MaxPerLetter int `yaml:"max_per_letter" env:"CATALOG_MAX_PER_LETTER" env-default:"100" validate:"required,min=1"`
	PageSize     int `yaml:"page_size"      env:"CATALOG_PAGE_SIZE"      env-default:"50"  validate:"required,min=1"`
	MaxPageSize  int `yaml:"max_page_size"  env:"CATALOG_MAX_PAGE_SIZE"  env-default:"200" validate:"required,min=1"`
}

type RateLimitConfig struct {
	RPS     float64       `yaml:"rps"      env:"RATE_LIMIT_RPS"      env-default:"5"   validate:"gt=0"`
	Burst   int           `yaml:"burst"    env:"RATE_LIMIT_BURST"    env-default:"10"  validate:"min=1"`
	IdleTTL time.Duration `yaml:"idle_ttl" env:"RATE_LIMIT_IDLE_TTL" env-default:"15m" validate:"gt=0"`
}

// SchedulerConfig: нулевой интервал отключает периодическую очистку,
// истёкшие резервации всё равно удаляются лениво при чтении.
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"0s" validate:"gte=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
