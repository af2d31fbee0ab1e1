// Package config loads process configuration and the hot-reloadable site file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. COMMENTGATE_SERVER_ADDR.
const EnvPrefix = "COMMENTGATE_"

// DefaultFile is read when no config path is given and it exists.
const DefaultFile = "commentgate.toml"

// Config is the process configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	GitHub GitHubConfig `koanf:"github"`
	Stripe StripeConfig `koanf:"stripe"`
}

type ServerConfig struct {
	Addr           string        `koanf:"addr"`
	Production     bool          `koanf:"production"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	LogLevel       string        `koanf:"log_level"`
	LogFormat      string        `koanf:"log_format"`
	SiteConfig     string        `koanf:"site_config"`
	CORSOrigins    string        `koanf:"cors_origins"`
}

type GitHubConfig struct {
	Token        string `koanf:"token"`
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	GraphQLURL   string `koanf:"graphql_url"`
}

type StripeConfig struct {
	SecretKey string `koanf:"secret_key"`
}

var defaults = map[string]any{
	"server.addr":            ":3000",
	"server.production":      false,
	"server.request_timeout": "30s",
	"server.log_level":       "info",
	"server.log_format":      "json",
	"server.site_config":     "config/site.yaml",
	"server.cors_origins":    "",
	"github.graphql_url":     "https://api.github.com/graphql",
}

// legacyEnv maps the variable names older deployments use to config keys.
var legacyEnv = map[string]string{
	"GITHUB_PERSONAL_ACCESS_TOKEN": "github.token",
	"GITHUB_CLIENT_ID":             "github.client_id",
	"GITHUB_CLIENT_SECRET":         "github.client_secret",
	"STRIPE_SECRET_KEY":            "stripe.secret_key",
}

// LoadEnvFile loads a dotenv file into the environment. A missing file is
// not an error. Variables already set are kept.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load builds the configuration from defaults, the TOML file at path
// (or DefaultFile when path is empty and it exists), legacy variables and
// finally COMMENTGATE_ prefixed variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := k.Load(confmap.Provider(legacyValues(), "."), nil); err != nil {
		return nil, fmt.Errorf("load legacy env: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.trim()
	return &cfg, nil
}

// envKey turns COMMENTGATE_GITHUB_CLIENT_ID into github.client_id.
// Only the first underscore separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func legacyValues() map[string]any {
	values := make(map[string]any)
	for name, key := range legacyEnv {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			values[key] = v
		}
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		values["server.addr"] = ":" + port
	}
	return values
}

func (c *Config) trim() {
	c.GitHub.Token = strings.TrimSpace(c.GitHub.Token)
	c.GitHub.ClientID = strings.TrimSpace(c.GitHub.ClientID)
	c.GitHub.ClientSecret = strings.TrimSpace(c.GitHub.ClientSecret)
	c.Stripe.SecretKey = strings.TrimSpace(c.Stripe.SecretKey)
	c.Server.LogFormat = strings.ToLower(strings.TrimSpace(c.Server.LogFormat))
}

// CORSOriginList splits the comma separated origin list.
func (c *Config) CORSOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.Server.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
