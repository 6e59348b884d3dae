package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server Server
	Sheet  Sheet
	Redis  Redis
	Kafka  Kafka
	Images Images
	Log    Log
}

// Server holds HTTP server configuration
type Server struct {
	Port string
	Host string
}

// Sheet holds the journal spreadsheet configuration. SchemaPath optionally
// points at a YAML file overriding the default feed column schema.
type Sheet struct {
	URL        string
	Index      int
	SchemaPath string
}

// Redis holds the trade cache configuration. An empty Addr disables the
// cache and the journal falls back to an in-memory store.
type Redis struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// Kafka holds the optional event producer configuration.
type Kafka struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// Images holds the chart image directory.
type Images struct {
	Dir string
}

// Log holds logging configuration.
type Log struct {
	Level  string
	Pretty bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: Server{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Sheet: Sheet{
			URL:        getEnv("SHEET_URL", ""),
			Index:      getEnvInt("SHEET_INDEX", 0),
			SchemaPath: getEnv("SHEET_SCHEMA_FILE", ""),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Key:      getEnv("REDIS_KEY", "journal:trades"),
		},
		Kafka: Kafka{
			Enabled: getEnv("KAFKA_ENABLED", "false") == "true",
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "journal-events"),
		},
		Images: Images{
			Dir: getEnv("IMAGES_DIR", "images-data"),
		},
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "true") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
