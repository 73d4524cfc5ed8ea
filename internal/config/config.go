// Package config loads the service configuration.
//
// Sources, lowest precedence first:
//   - built-in defaults (DefaultConfig)
//   - an optional YAML file (--config)
//   - the legacy variables of the original deployment (PORT, PG_HOST, ...)
//   - DECKAPI_ prefixed variables, "__" separating nesting levels
//     (DECKAPI_DATABASE__HOST -> database.host)
//   - command-line flags that were explicitly set
//
// A `.env` file in the working directory is loaded into the process
// environment before any of this runs.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` (if present) into the process env.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "DECKAPI_"

// Config is the root configuration object for the application.
//
// `koanf` tags name the keys, `validate` tags are enforced by
// go-playground/validator once every source is merged.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// ServerConfig groups settings for the HTTP listener.
//
// Timeouts are whole seconds. RateLimit is requests per second per client
// IP; zero turns the limiter off.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
	RateLimit          float64  `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required,min=1,max=65535"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=0"`
}

// DefaultConfig returns the configuration used when nothing overrides it:
// port 3000 and a local PostgreSQL.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			ShutdownTimeout:    30,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "postgres",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 3600,
			ConnMaxIdleTime: 300,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// legacyEnvKeys maps the variable names used by the original deployment
// onto koanf keys.
var legacyEnvKeys = map[string]string{
	"PORT":        "server.port",
	"PG_HOST":     "database.host",
	"PG_PORT":     "database.port",
	"PG_USER":     "database.user",
	"PG_PASSWORD": "database.password",
	"PG_DATABASE": "database.name",
}

// envKey turns DECKAPI_DATABASE__SSL_MODE into database.ssl_mode.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Flags returns the command-line flags understood by LoadConfig.
//
// Flag names are koanf keys, so a flag set on the command line overrides the
// same key from every other source.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("deck-api", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML configuration file")
	fs.String("primary.env", "", "runtime environment (local, development, staging, production)")
	fs.String("server.port", "", "HTTP listen port")
	fs.String("database.host", "", "PostgreSQL host")
	fs.Int("database.port", 0, "PostgreSQL port")
	fs.String("database.user", "", "PostgreSQL user")
	fs.String("database.name", "", "PostgreSQL database name")
	fs.String("observability.logging.level", "", "log level (debug, info, warn, error)")
	return fs
}

// LoadConfig merges every configuration source, validates the result and
// fills in observability defaults.
//
// fs may be nil; otherwise it must come from Flags() and already be parsed.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if fs != nil {
		if path, _ := fs.GetString("config"); path != "" {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("could not load config file %s: %w", path, err)
			}
		}
	}

	// Unknown names map to "" and are skipped by the provider.
	err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnvKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load legacy env variables: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	if fs != nil {
		err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return f.Name, posflag.FlagVal(fs, f)
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("could not load flags: %w", err)
		}
	}

	// Unmarshal on top of the defaults: keys absent from every source keep
	// their default value.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always come from here, whatever the
	// sources said.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env
	if mainConfig.Observability.Logging.Level == "" {
		mainConfig.Observability.Logging.Level = mainConfig.Observability.GetLogLevel()
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
