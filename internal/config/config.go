package config

import (
	"os"
	"strconv"

	"github.com/aiaiai-hi/Report-App/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Admin  AdminConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
	GinMode string
}

// AdminConfig holds the shared admin credentials.
// A single shared credential pair is the whole authorization model here;
// anything richer is out of scope for this tool.
type AdminConfig struct {
	User     string
	Password string
}

// DataConfig holds flat-file storage settings
type DataConfig struct {
	Dir string
	// MaxUploadBytes caps the size of uploaded spreadsheets.
	MaxUploadBytes int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Admin: AdminConfig{
			User:     getEnvOrDefault("ADMIN_USER", "admin"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Data: DataConfig{
			Dir:            getEnvOrDefault("DATA_DIR", "data"),
			MaxUploadBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 20<<20),
		},
	}

	if config.Admin.Password == "" {
		return nil, errors.ConfigInvalid("ADMIN_PASSWORD is required")
	}
	if config.Data.Dir == "" {
		return nil, errors.ConfigInvalid("DATA_DIR must not be empty")
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
