package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and Etsy upstream API access.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	STATIC_DIR=./web
//	ETSY_API_KEY=xyz
//	ETSY_SHOP_ID=12345678
//	ETSY_API_BASE_URL=https://openapi.etsy.com
//	ETSY_TIMEOUT_SECONDS=10
type Config struct {
	Server ServerConfig // HTTP server configuration
	Etsy   EtsyConfig   // Etsy upstream API settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port      string // The TCP port the HTTP server will listen on (e.g., "8080")
	StaticDir string // Directory holding the static dashboard assets
}

// EtsyConfig defines access details for the Etsy Open API.
//
// Fields:
//   - APIKey: Etsy application API key; also sent as the bearer token.
//   - ShopID: numeric shop identifier, kept as a string.
//   - BaseURL: upstream API origin (overridable for tests).
//   - Timeout: hard deadline applied to each upstream HTTP call.
//
// When APIKey or ShopID is empty the service runs in mock mode and never
// touches the network.
type EtsyConfig struct {
	APIKey  string
	ShopID  string
	BaseURL string
	Timeout time.Duration
}

// HasCredentials reports whether both upstream secrets are configured.
// It decides mock vs. live mode once at startup.
func (e EtsyConfig) HasCredentials() bool {
	return e.APIKey != "" && e.ShopID != ""
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and handed to constructors explicitly;
// components must not reach back into the environment themselves.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields that have a sensible default.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Note: ETSY_API_KEY and ETSY_SHOP_ID intentionally have no defaults;
// their absence selects mock mode rather than being an error.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STATIC_DIR", "./web")

	viper.SetDefault("ETSY_API_BASE_URL", "https://openapi.etsy.com")
	viper.SetDefault("ETSY_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:      viper.GetString("SERVER_PORT"),
			StaticDir: viper.GetString("STATIC_DIR"),
		},
		Etsy: EtsyConfig{
			APIKey:  viper.GetString("ETSY_API_KEY"),
			ShopID:  viper.GetString("ETSY_SHOP_ID"),
			BaseURL: viper.GetString("ETSY_API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("ETSY_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Credentials are deliberately not required: missing credentials select mock
// mode, which is a supported configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.StaticDir == "" {
		missing = append(missing, "STATIC_DIR")
	}
	if AppConfig.Etsy.BaseURL == "" {
		missing = append(missing, "ETSY_API_BASE_URL")
	}
	if AppConfig.Etsy.Timeout <= 0 {
		missing = append(missing, "ETSY_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
