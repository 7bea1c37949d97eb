package config

import (
	"os"
)

// Config holds all configuration for the accounts service
type Config struct {
	HTTPPort string
	RabbitMQ RabbitMQConfig
}

// RabbitMQConfig holds RabbitMQ publisher configuration.
// An empty URL disables the RabbitMQ sink; notifications go to the log instead.
type RabbitMQConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
}

// Load loads configuration from environment variables with default values
func Load() *Config {
	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		RabbitMQ: RabbitMQConfig{
			URL:        getEnv("RABBITMQ_URL", ""),
			Exchange:   getEnv("RABBITMQ_EXCHANGE", "accounts.notifications"),
			RoutingKey: getEnv("RABBITMQ_ROUTING_KEY", "accounts.notifications.transfer"),
		},
	}
}

// getEnv retrieves an environment variable or returns a default value if not set
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
