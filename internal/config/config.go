package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Catalog CatalogConfig
	Gemini  GeminiConfig
	Agent   AgentConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins []string
}

// BackendConfig holds mock vehicle backend configuration
type BackendConfig struct {
	BaseURL string
	Timeout int // seconds, applied to every outbound call
	Port    int // listen port when running the mock backend itself
}

// CatalogConfig holds the static vehicle catalog configuration
type CatalogConfig struct {
	Path    string
	DataDir string
}

// GeminiConfig holds the conversational fallback engine configuration
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Enabled     bool
}

// AgentConfig holds agent identity and routing configuration
type AgentConfig struct {
	Name         string
	CompareLimit int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvAsInt("PORT", 8000),
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode: getEnv("GIN_MODE", "release"),
			AllowedOrigins: []string{
				getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:4200"),
				"http://localhost:3000",
				"http://127.0.0.1:4200",
			},
		},
		Backend: BackendConfig{
			BaseURL: getEnv("MOCK_API_URL", "http://localhost:9999"),
			Timeout: getEnvAsInt("BACKEND_TIMEOUT", 10),
			Port:    getEnvAsInt("MOCK_API_PORT", 9999),
		},
		Catalog: CatalogConfig{
			Path:    getEnv("CATALOG_PATH", "data/product_search.json"),
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.4),
			Enabled:     getEnv("GEMINI_API_KEY", "") != "",
		},
		Agent: AgentConfig{
			Name:         getEnv("AGENT_NAME", "vehicle_agent"),
			CompareLimit: getEnvAsInt("COMPARE_LIMIT", 2),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
