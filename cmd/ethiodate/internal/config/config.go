// Package config loads the ethiodate configuration from defaults, an
// optional YAML file, a .env file and ETHIODATE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/rabitt1ove/ethiocal"
)

// EnvPrefix is prepended to every environment variable, so server.port is
// read from ETHIODATE_SERVER_PORT.
const EnvPrefix = "ETHIODATE"

// Config holds all configuration for the application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Locale   LocaleConfig   `mapstructure:"locale"`
	Convert  ConvertConfig  `mapstructure:"convert"`
	Output   OutputConfig   `mapstructure:"output"`
	Security SecurityConfig `mapstructure:"security"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns host:port.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
	Output string `mapstructure:"output"` // "stderr", "stdout" or a file path
}

// LocaleConfig selects the name table used for single-locale output.
type LocaleConfig struct {
	Default string `mapstructure:"default"`
}

// Tag returns the default locale as a language tag.
func (c LocaleConfig) Tag() language.Tag {
	return language.Make(c.Default)
}

// ConvertConfig selects the conversion arithmetic.
type ConvertConfig struct {
	Method string `mapstructure:"method"` // "direct" or "jdn"
}

// OutputConfig holds CLI output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "ymd", "dmy", "mdy" or "long"
}

// SecurityConfig holds HTTP security configuration
type SecurityConfig struct {
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	RateLimitRequests  int    `mapstructure:"rate_limit_requests"` // per second and client; 0 disables
}

// AllowedOrigins splits the comma separated CORS origins.
func (c SecurityConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads the configuration. configFile names a YAML file to read; when
// empty, ethiodate.yaml in the working directory is used if it exists.
// envFiles are loaded into the environment first (".env" when none are
// given); missing env files are ignored.
func Load(configFile string, envFiles ...string) (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ethiodate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ethiodate")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "15s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")

	v.SetDefault("locale.default", "am")
	v.SetDefault("convert.method", "direct")
	v.SetDefault("output.format", "ymd")

	v.SetDefault("security.cors_allowed_origins", "*")
	v.SetDefault("security.rate_limit_requests", 20)

	v.SetDefault("metrics.enabled", true)
}

// Validate checks cross-field constraints that the defaults cannot
// guarantee once files and environment variables are merged in.
func Validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if cfg.Security.RateLimitRequests < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if _, err := ethiocal.ParseMethod(cfg.Convert.Method); err != nil {
		return err
	}
	if !ValidOutputFormat(cfg.Output.Format) {
		return fmt.Errorf("unknown output format %q (expected ymd, dmy, mdy or long)", cfg.Output.Format)
	}
	if _, err := language.Parse(cfg.Locale.Default); err != nil {
		return fmt.Errorf("invalid default locale %q: %w", cfg.Locale.Default, err)
	}
	switch cfg.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q (expected json or console)", cfg.Logger.Format)
	}
	return nil
}

// ValidOutputFormat reports whether f names a date output format.
func ValidOutputFormat(f string) bool {
	switch f {
	case "ymd", "dmy", "mdy", "long":
		return true
	}
	return false
}
