package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the client configuration. Values resolve in order: YAML file,
// then PRINTCTL_* environment variables, then the tag defaults for anything
// still unset.
type Config struct {
	// ServerURL is the base URL of the print service.
	ServerURL string `yaml:"server_url" env:"PRINTCTL_SERVER_URL, overwrite, default=http://localhost:8080"`
	// RequestTimeout bounds every API round trip.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"PRINTCTL_TIMEOUT, overwrite, default=15s"`
	// LogLevel is the minimum log level: trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"PRINTCTL_LOG_LEVEL, overwrite, default=info"`
	// JSONLogs switches from the interactive console writer to raw JSON.
	JSONLogs bool `yaml:"json_logs" env:"PRINTCTL_JSON_LOGS, overwrite"`
}

// Load reads the optional YAML file at path and applies environment
// overrides. A missing file is fine (defaults apply); an unreadable or
// malformed one is an error.
func Load(ctx context.Context, path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// no file, env and defaults only
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}
