package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	// --- General ---
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	// --- HTTP Server ---
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8000"`

	// --- Client bundle ---
	// Directory of the pre-built client bundle (index.html + assets/).
	DistDir string `envconfig:"DIST_DIR" default:"app/dist"`

	// --- Advisor ---
	// Artificial latency emulating an upstream model call.
	QuestionsDelay   time.Duration `envconfig:"QUESTIONS_DELAY" default:"1200ms"`
	SuggestionsDelay time.Duration `envconfig:"SUGGESTIONS_DELAY" default:"800ms"`

	// CORS Settings. "*" allows every origin with credentials.
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// --- Observability ---
	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	origins := strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
	out := origins[:0]
	for _, o := range origins {
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

// AllowsAnyOrigin reports whether the CORS policy is unrestricted.
func (c *Config) AllowsAnyOrigin() bool {
	origins := c.GetAllowedOrigins()
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}

// LoadConfig loads configuration from an optional .env file and the environment.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			} else {
				log.Printf("Loaded configuration from %s", envFilePath)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	// Environment variables win over .env values: godotenv never overrides.
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}
	if cfg.QuestionsDelay < 0 || cfg.SuggestionsDelay < 0 {
		return nil, fmt.Errorf("delays must not be negative (questions=%s, suggestions=%s)", cfg.QuestionsDelay, cfg.SuggestionsDelay)
	}

	return &cfg, nil
}
