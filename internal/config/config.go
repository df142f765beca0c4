package config

import (
	"fmt"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverBolt     = "bolt"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"        validate:"required"`
	Logger        LoggerConfig        `yaml:"logger"        validate:"required"`
	Gin           GinConfig           `yaml:"gin"           validate:"required"`
	Storage       StorageConfig       `yaml:"storage"       validate:"required"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	Bolt          BoltConfig          `yaml:"bolt"`
	Redis         RedisConfig         `yaml:"redis"`
	Kafka         KafkaConfig         `yaml:"kafka"`
	Telegram      TelegramConfig      `yaml:"telegram"`
	Notifications NotificationsConfig `yaml:"notifications" validate:"required"`
	Discount      DiscountConfig      `yaml:"discount"`
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

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres bolt"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"     validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"          validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"      validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"      validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"caravanbooker" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"       validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"            validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"             validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"            validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type BoltConfig struct {
	Path        string        `yaml:"path"         env:"BOLT_PATH"         env-default:"data/caravanbooker.db" validate:"required"`
	OpenTimeout time.Duration `yaml:"open_timeout" env:"BOLT_OPEN_TIMEOUT" env-default:"1s"                    validate:"gt=0"`
}

// RedisConfig включает общую блокировку караванов. Пустой Addr означает блокировку в памяти процесса.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:""`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"   validate:"min=0"`
	LockTTL  time.Duration `yaml:"lock_ttl"  env:"REDIS_LOCK_TTL"  env-default:"10s" validate:"gt=0"`
	LockWait time.Duration `yaml:"lock_wait" env:"REDIS_LOCK_WAIT" env-default:"5s"  validate:"gt=0"`
}

type KafkaConfig struct {
	Brokers string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:""`
	Topic   string `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"caravanbooker.reservations"`
}

// BrokerList разбирает список брокеров через запятую.
func (k KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type NotificationsConfig struct {
	QueueSize   int `yaml:"queue_size"   env:"NOTIFY_QUEUE_SIZE"   env-default:"256"  validate:"min=1"`
	HistorySize int `yaml:"history_size" env:"NOTIFY_HISTORY_SIZE" env-default:"1000" validate:"min=0"`
}

type DiscountConfig struct {
	Kind  string  `yaml:"kind"  env:"DISCOUNT_KIND"  env-default:"none" validate:"oneof=none percentage fixed"`
	Value float64 `yaml:"value" env:"DISCOUNT_VALUE" env-default:"0"    validate:"min=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
