package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestKafkaConfig_BrokerList(t *testing.T) {
	assert.Nil(t, KafkaConfig{}.BrokerList())
	assert.Equal(t, []string{"a:9092", "b:9092"}, KafkaConfig{Brokers: " a:9092, ,b:9092 "}.BrokerList())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "unknown"}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := &PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "caravans", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=caravans sslmode=disable", p.DSN())
}
