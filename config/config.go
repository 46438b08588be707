// Package config resolves client configuration once at process start from a
// YAML file, a .env file, the environment and AWS Secrets Manager, in
// increasing order of precedence.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cyphera/circle-w3s/circleerr"
	"github.com/cyphera/circle-w3s/client/aws"
	"github.com/cyphera/circle-w3s/crypto/entitysecret"
	"github.com/cyphera/circle-w3s/logger"
)

// DefaultBaseURL is the production Circle API host.
const DefaultBaseURL = "https://api.circle.com"

// Environment variable names.
const (
	EnvAPIKey          = "CIRCLE_API_KEY"
	EnvEntitySecret    = "CIRCLE_ENTITY_SECRET"
	EnvPublicKey       = "CIRCLE_PUBLIC_KEY"
	EnvBaseURL         = "CIRCLE_BASE_URL"
	EnvTimeout         = "CIRCLE_TIMEOUT"
	EnvStage           = "STAGE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvAPIKeyARN       = "CIRCLE_API_KEY_ARN"
	EnvEntitySecretARN = "CIRCLE_ENTITY_SECRET_ARN"
)

// Config is the explicit configuration passed to the client constructors.
type Config struct {
	APIKey       string        `yaml:"apiKey"`
	EntitySecret string        `yaml:"entitySecret"`
	PublicKey    string        `yaml:"publicKey"`
	BaseURL      string        `yaml:"baseURL"`
	Timeout      time.Duration `yaml:"timeout"`
	Stage        string        `yaml:"stage"`
	LogLevel     string        `yaml:"logLevel"`

	APIKeyARN       string `yaml:"apiKeyARN"`
	EntitySecretARN string `yaml:"entitySecretARN"`
}

// SecretFetcher resolves a secret ARN to its value.
type SecretFetcher interface {
	GetSecretString(ctx context.Context, secretArn string) (string, error)
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// ConfigFile is an optional YAML file.
	ConfigFile string
	// EnvFile is an optional .env file. A missing file is logged and ignored.
	EnvFile string
	// Lookup reads the environment. Defaults to os.LookupEnv.
	Lookup func(key string) (string, bool)
	// Secrets resolves ARNs. When nil and an ARN is configured, an AWS
	// Secrets Manager client is created from the default credential chain.
	Secrets SecretFetcher
}

// Load resolves and validates configuration.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg := &Config{}

	if opts.ConfigFile != "" {
		fileCfg, err := LoadFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if opts.EnvFile != "" {
		dotenv, err := godotenv.Read(opts.EnvFile)
		if err != nil {
			logger.Warn("Could not load env file, continuing with environment", zap.String("file", opts.EnvFile), zap.Error(err))
		} else {
			lookup = layered(lookup, dotenv)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if cfg.APIKeyARN != "" || cfg.EntitySecretARN != "" {
		secrets := opts.Secrets
		if secrets == nil {
			client, err := aws.NewSecretsManagerClient(ctx)
			if err != nil {
				logger.Warn("Secrets Manager unavailable, using plain configuration values", zap.Error(err))
			} else {
				secrets = client
			}
		}
		if secrets != nil {
			cfg.resolveSecret(ctx, secrets, cfg.APIKeyARN, &cfg.APIKey, EnvAPIKey)
			cfg.resolveSecret(ctx, secrets, cfg.EntitySecretARN, &cfg.EntitySecret, EnvEntitySecret)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file without applying defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return cfg, nil
}

// layered looks in the real environment first, then the .env values.
func layered(env func(string) (string, bool), dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := env(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvAPIKey, &c.APIKey},
		{EnvEntitySecret, &c.EntitySecret},
		{EnvPublicKey, &c.PublicKey},
		{EnvBaseURL, &c.BaseURL},
		{EnvStage, &c.Stage},
		{EnvLogLevel, &c.LogLevel},
		{EnvAPIKeyARN, &c.APIKeyARN},
		{EnvEntitySecretARN, &c.EntitySecretARN},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return &circleerr.ConfigError{Field: EnvTimeout, Err: err}
		}
		c.Timeout = timeout
	}
	return nil
}

// resolveSecret overrides *dst with the secret at arn, keeping the plain
// value when the lookup fails.
func (c *Config) resolveSecret(ctx context.Context, secrets SecretFetcher, arn string, dst *string, name string) {
	if arn == "" {
		return
	}

	value, err := secrets.GetSecretString(ctx, arn)
	if err != nil {
		logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to plain value",
			zap.String("secret", name),
			zap.Bool("fallbackAvailable", *dst != ""),
			zap.Error(err))
		return
	}
	*dst = value
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Stage == "" {
		c.Stage = "dev"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first missing or malformed value as a
// *circleerr.ConfigError.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &circleerr.ConfigError{Field: EnvAPIKey, Err: errors.New("API key is required")}
	}
	if c.EntitySecret == "" {
		return &circleerr.ConfigError{Field: EnvEntitySecret, Err: errors.New("entity secret is required")}
	}
	if _, err := entitysecret.DecodeSecret(c.EntitySecret); err != nil {
		return &circleerr.ConfigError{Field: EnvEntitySecret, Err: err}
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return &circleerr.ConfigError{Field: EnvBaseURL, Err: err}
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &circleerr.ConfigError{Field: EnvBaseURL, Err: fmt.Errorf("must be an absolute http(s) URL, got %q", c.BaseURL)}
		}
	}
	if c.Timeout < 0 {
		return &circleerr.ConfigError{Field: EnvTimeout, Err: fmt.Errorf("must not be negative, got %s", c.Timeout)}
	}
	return nil
}

// LoggerConfig derives the logger configuration for this stage.
func (c *Config) LoggerConfig() logger.LoggerConfig {
	return logger.ConfigForStage(c.Stage, c.LogLevel)
}

// String never includes the API key or entity secret.
func (c Config) String() string {
	return fmt.Sprintf("Config{BaseURL: %s, Stage: %s, LogLevel: %s, Timeout: %s, APIKey: %s, EntitySecret: %s, PublicKey: %t}",
		c.BaseURL, c.Stage, c.LogLevel, c.Timeout, redact(c.APIKey), redact(c.EntitySecret), c.PublicKey != "")
}

// GoString keeps %#v from dumping the secret.
func (c Config) GoString() string {
	return c.String()
}

func redact(s string) string {
	if s == "" {
		return "<unset>"
	}
	return "<redacted>"
}
