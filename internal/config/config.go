package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	RocketReach RocketReachConfig `yaml:"rocketreach" mapstructure:"rocketreach"`
	Jina        JinaConfig        `yaml:"jina" mapstructure:"jina"`
	Resolve     ResolveConfig     `yaml:"resolve" mapstructure:"resolve"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// RocketReachConfig holds authoritative lookup credentials and budget.
type RocketReachConfig struct {
	Key            string `yaml:"key" mapstructure:"key"`
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	CallsPerMinute int    `yaml:"calls_per_minute" mapstructure:"calls_per_minute"`
}

// JinaConfig holds Jina AI Reader/Search settings.
type JinaConfig struct {
	Key           string `yaml:"key" mapstructure:"key"`
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	SearchBaseURL string `yaml:"search_base_url" mapstructure:"search_base_url"`
}

// ResolveConfig configures the fallback cascade.
type ResolveConfig struct {
	FetchTimeoutSecs     int    `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
	MaxConcurrentFetches int    `yaml:"max_concurrent_fetches" mapstructure:"max_concurrent_fetches"`
	ScanAllTiers         bool   `yaml:"scan_all_tiers" mapstructure:"scan_all_tiers"`
	SourcesPath          string `yaml:"sources_path" mapstructure:"sources_path"`
}

// ServerConfig configures the HTTP resolve endpoint.
type ServerConfig struct {
	Port              int `yaml:"port" mapstructure:"port"`
	RequestsPerMinute int `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks the fields a given run mode depends on. Modes are
// "resolve" for one-shot CLI resolution and "serve" for the HTTP server.
func (c *Config) Validate(mode string) error {
	var problems []string

	if c.Resolve.FetchTimeoutSecs < 1 || c.Resolve.FetchTimeoutSecs > 120 {
		problems = append(problems, "resolve.fetch_timeout_secs must be between 1 and 120")
	}
	if c.Resolve.MaxConcurrentFetches < 1 || c.Resolve.MaxConcurrentFetches > 50 {
		problems = append(problems, "resolve.max_concurrent_fetches must be between 1 and 50")
	}
	if c.RocketReach.CallsPerMinute < 0 {
		problems = append(problems, "rocketreach.calls_per_minute must be >= 0")
	}

	switch mode {
	case "resolve":
		// No extra requirements: every external credential is optional and
		// its absence just narrows the cascade.
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be > 0 and <= 65535")
		}
		if c.Server.RequestsPerMinute < 0 {
			problems = append(problems, "server.requests_per_minute must be >= 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CONTACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.requests_per_minute", 30)
	v.SetDefault("resolve.fetch_timeout_secs", 5)
	v.SetDefault("resolve.max_concurrent_fetches", 8)
	v.SetDefault("resolve.scan_all_tiers", false)
	v.SetDefault("rocketreach.base_url", "https://api.rocketreach.co/v2")
	v.SetDefault("rocketreach.calls_per_minute", 30)
	v.SetDefault("jina.base_url", "https://r.jina.ai")
	v.SetDefault("jina.search_base_url", "https://s.jina.ai")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
