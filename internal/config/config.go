package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"dentamatch"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address              string   `envconfig:"DENTAMATCH_ADDRESS" default:":3443"`
	MetricsAddress       string   `envconfig:"DENTAMATCH_METRICS_ADDRESS" default:":8080"`
	BaseUrl              string   `envconfig:"DENTAMATCH_BASE_URL" default:"https://localhost:3443"`
	LogLevel             string   `envconfig:"DENTAMATCH_LOG_LEVEL" default:"info"`
	MigrationFolder      string   `envconfig:"DENTAMATCH_MIGRATIONS_FOLDER" default:""`
	RedisURL             string   `envconfig:"DENTAMATCH_REDIS_URL" default:""`
	OverdueSweepInterval string   `envconfig:"DENTAMATCH_OVERDUE_SWEEP_INTERVAL" default:"@every 1h"`
	CorsAllowedOrigins   []string `envconfig:"DENTAMATCH_CORS_ALLOWED_ORIGINS" default:"https://app.dentamatch.io"`
	Kafka                kafkaConfig
	Auth                 Auth
}

type kafkaConfig struct {
	Brokers  []string `envconfig:"DENTAMATCH_KAFKA_BROKERS" default:""`
	Topic    string   `envconfig:"DENTAMATCH_KAFKA_TOPIC" default:""`
	ClientID string   `envconfig:"DENTAMATCH_KAFKA_CLIENT_ID" default:""`
}

type Auth struct {
	AuthenticationType string `envconfig:"DENTAMATCH_AUTH" default:""`
	JwkCertURL         string `envconfig:"DENTAMATCH_JWK_URL" default:""`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a config populated only with defaults. Used by tests.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{Type: "sqlite", Name: ":memory:"},
		Service:  &svcConfig{Address: "localhost:0", LogLevel: "info"},
	}
}
