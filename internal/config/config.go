// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	appvalidation "github.com/allisson/biscuit/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// LogFormat selects the log handler, "json" or "text".
	LogFormat string

	// TestingKeyManagerEnabled registers the "testing" key manager, which
	// returns a fixed well-known key. Never enable it outside tests.
	TestingKeyManagerEnabled bool

	// AWSRegion is used for KMS key ids that do not carry a region. Empty
	// leaves the choice to the AWS SDK chain (AWS_DEFAULT_REGION, shared config).
	AWSRegion string
	// AWSKMSEndpoint overrides the KMS endpoint (e.g., a localstack URL).
	AWSKMSEndpoint string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is the .prom file the metrics are written to on exit.
	// Empty disables the export.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel:  env.GetString("LOG_LEVEL", "info"),
		LogFormat: env.GetString("LOG_FORMAT", "json"),

		// Key managers
		TestingKeyManagerEnabled: env.GetBool("TESTING_KEY_MANAGER_ENABLED", false),

		// AWS
		AWSRegion:      env.GetString("AWS_REGION", ""),
		AWSKMSEndpoint: env.GetString("AWS_KMS_ENDPOINT", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "biscuit"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("json", "text")),
		validation.Field(&c.AWSRegion, appvalidation.NoWhitespace),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required),
		),
		validation.Field(&c.MetricsTextfile, appvalidation.PromTextfile),
	)
	return appvalidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
