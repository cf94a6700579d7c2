package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded from
// an env-style config file for local development. Environment variables always
// win over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file %s not loaded: %v", configPath, err)
		}
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Version:     v.GetString("APP_VERSION"),
		},
		Server: models.ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			Username:  v.GetString("DB_USERNAME"),
			Password:  v.GetString("DB_PASSWORD"),
			Database:  v.GetString("DB_DATABASE"),
			SSLMode:   v.GetString("DB_SSL_MODE"),
			MaxConns:  v.GetInt("DB_MAX_CONNS"),
			IdleConns: v.GetInt("DB_IDLE_CONNS"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		NSQ: models.NSQConfig{
			Address:         v.GetString("NSQ_ADDRESS"),
			LookupAddresses: v.GetStringSlice("NSQ_LOOKUP_ADDRESSES"),
			Topic:           v.GetString("NSQ_TOPIC"),
			Channel:         v.GetString("NSQ_CHANNEL"),
			AlertTopic:      v.GetString("NSQ_ALERT_TOPIC"),
		},
		Ingest: models.IngestConfig{
			SuspiciousAmount:    v.GetFloat64("INGEST_SUSPICIOUS_AMOUNT"),
			SeenCacheTTLSeconds: v.GetInt("INGEST_SEEN_CACHE_TTL_SECONDS"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			FilePath: v.GetString("LOG_FILE_PATH"),
		},
		Reports: models.ReportsConfig{
			OutputDir: v.GetString("REPORTS_OUTPUT_DIR"),
		},
	}
}

// GetEnv returns an environment variable or a default when unset.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "acme-transactions")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_DATABASE", "transactions")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_TOPIC", "transactions")
	v.SetDefault("NSQ_CHANNEL", "ingest")
	v.SetDefault("NSQ_ALERT_TOPIC", "transactions.suspicious")

	v.SetDefault("INGEST_SUSPICIOUS_AMOUNT", 10000)
	v.SetDefault("INGEST_SEEN_CACHE_TTL_SECONDS", 86400)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("REPORTS_OUTPUT_DIR", "reports")
}
