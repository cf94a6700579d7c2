package models

// Config holds all application configuration, loaded from the environment at
// process start and passed explicitly to the components that need it.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Ingest   IngestConfig
	Logger   LoggerConfig
	Reports  ReportsConfig
}

// AppConfig holds application-level metadata.
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ daemon and topic configuration.
type NSQConfig struct {
	Address         string
	LookupAddresses []string
	Topic           string
	Channel         string
	AlertTopic      string
}

// IngestConfig holds ingestion pipeline tuning.
type IngestConfig struct {
	// SuspiciousAmount is the advisory threshold above which an accepted
	// transaction triggers an alert signal. It never affects acceptance.
	SuspiciousAmount float64
	// SeenCacheTTLSeconds bounds how long accepted transaction ids are kept
	// in the Redis read-through cache.
	SeenCacheTTLSeconds int
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ReportsConfig holds scheduled report generation configuration.
type ReportsConfig struct {
	OutputDir string
}
