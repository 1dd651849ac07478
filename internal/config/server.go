package config

import "os"

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000" // Default to port 3000, where the verifier looks
	}

	return ServerConfig{
		Port: port,
	}
}
