// Package config loads mtcompare settings from flags, environment, an
// optional YAML file and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/mtcompare/internal/engine"
	"github.com/valpere/mtcompare/internal/language"
	"github.com/valpere/mtcompare/internal/secrets"
)

// EnvPrefix prefixes every environment variable, e.g. MTCOMPARE_GATEWAY_URL.
const EnvPrefix = "MTCOMPARE"

type GoogleConfig struct {
	Credentials string `mapstructure:"credentials"`
	ProjectID   string `mapstructure:"project_id"`
	Enabled     bool   `mapstructure:"enabled"`
}

type MyMemoryConfig struct {
	Email string `mapstructure:"email"`
}

type GatewayConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SystranConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type DeepLConfig struct {
	APIKey string `mapstructure:"api_key"`
	URL    string `mapstructure:"url"`
}

type OllamaConfig struct {
	URL     string `mapstructure:"url"`
	Model   string `mapstructure:"model"`
	Enabled bool   `mapstructure:"enabled"`
}

type OpenRouterConfig struct {
	APIKey string   `mapstructure:"api_key"`
	Models []string `mapstructure:"models"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Config is the resolved configuration of one process.
type Config struct {
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
	Source    string        `mapstructure:"source"`
	Target    string        `mapstructure:"target"`
	Engines   []string      `mapstructure:"engines"`
	Pace      time.Duration `mapstructure:"pace"`

	Google     GoogleConfig     `mapstructure:"google"`
	MyMemory   MyMemoryConfig   `mapstructure:"mymemory"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Systran    SystranConfig    `mapstructure:"systran"`
	DeepL      DeepLConfig      `mapstructure:"deepl"`
	Ollama     OllamaConfig     `mapstructure:"ollama"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Server     ServerConfig     `mapstructure:"server"`
}

// SetDefaults registers every key with its default. Keys must be known to
// viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("source", language.Auto)
	v.SetDefault("target", "en")
	v.SetDefault("engines", []string{})
	v.SetDefault("pace", 300*time.Millisecond)

	v.SetDefault("google.credentials", "")
	v.SetDefault("google.project_id", "")
	v.SetDefault("mymemory.email", "")
	v.SetDefault("gateway.url", "")
	v.SetDefault("gateway.timeout", 15*time.Second)
	v.SetDefault("systran.api_key", "")
	v.SetDefault("deepl.api_key", "")
	v.SetDefault("deepl.url", "")
	v.SetDefault("ollama.url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("ollama.enabled", false)
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.models", []string{})
	v.SetDefault("server.addr", ":7860")
	v.SetDefault("server.cors_origins", []string{})
}

// Load reads configuration into a Config. file overrides the default search
// for .mtcompare.yaml in the home and working directories; a missing default
// file is not an error. A .env file in the working directory is loaded into
// the environment first without overriding variables already set.
func Load(v *viper.Viper, file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".mtcompare")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Languages may be given as "code - Label" choices, as listed in the UI.
	cfg.Source = language.ParseChoice(cfg.Source)
	cfg.Target = language.ParseChoice(cfg.Target)

	// Google needs credentials; without an explicit switch it is enabled only
	// when some are configured.
	if v.IsSet("google.enabled") {
		cfg.Google.Enabled = v.GetBool("google.enabled")
	} else {
		cfg.Google.Enabled = cfg.Google.Credentials != "" ||
			cfg.Google.ProjectID != "" ||
			os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != ""
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if err := language.Validate(c.Source, true); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := language.Validate(c.Target, false); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if c.Pace < 0 {
		return fmt.Errorf("pace must not be negative, got %s", c.Pace)
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway.timeout must be positive, got %s", c.Gateway.Timeout)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// ResolveSecrets fills API keys left empty by configuration from the OS
// keychain.
func (c *Config) ResolveSecrets() {
	c.Systran.APIKey, _ = secrets.Resolve("systran", c.Systran.APIKey)
	c.DeepL.APIKey, _ = secrets.Resolve("deepl", c.DeepL.APIKey)
	c.OpenRouter.APIKey, _ = secrets.Resolve("openrouter", c.OpenRouter.APIKey)
}

// Capabilities derives which integration families can be registered.
// MyMemory needs no key, so the direct family is always available.
func (c *Config) Capabilities() engine.Capabilities {
	return engine.Capabilities{
		Direct:  true,
		Gateway: c.Gateway.URL != "",
		LLM:     c.Ollama.Enabled || c.OpenRouter.APIKey != "",
	}
}
